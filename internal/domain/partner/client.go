package partner

import (
	"strings"
	"time"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// Client represents a client in the partner context. It is the aggregate
// root for the client's credit ledger: an ordered list of unconsumed income
// entries (oldest first) and an ordered list of expense entries.
type Client struct {
	shared.BaseAggregateRoot
	Name  string
	Email string

	credits []*ledger.Transaction // income entries with no order id, insertion order
	debits  []*ledger.Transaction
}

// NewClient creates a new client with required fields
func NewClient(name, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		credits:           make([]*ledger.Transaction, 0),
		debits:            make([]*ledger.Transaction, 0),
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// RehydrateClient rebuilds a client from storage. No domain events are
// raised; the entry lists must already be in insertion order.
func RehydrateClient(root shared.BaseAggregateRoot, name, email string, credits, debits []*ledger.Transaction) *Client {
	if credits == nil {
		credits = make([]*ledger.Transaction, 0)
	}
	if debits == nil {
		debits = make([]*ledger.Transaction, 0)
	}
	return &Client{
		BaseAggregateRoot: root,
		Name:              name,
		Email:             email,
		credits:           credits,
		debits:            debits,
	}
}

// AddCredit appends an income entry to the client's credit list. Only
// unapplied income (no order id) counts as credit.
func (c *Client) AddCredit(income *ledger.Transaction) error {
	if income.Type != ledger.TransactionTypeIncome {
		return shared.NewDomainError("INVALID_CREDIT", "Credit entries must be income transactions")
	}
	if !income.IsExtra() {
		return shared.NewDomainError("INVALID_CREDIT", "Income already applied to an order cannot be credited")
	}
	c.credits = append(c.credits, income)
	c.UpdatedAt = time.Now()
	c.AddDomainEvent(NewCreditAddedEvent(c, income))
	return nil
}

// AddDebit appends an expense entry to the client's debit history
func (c *Client) AddDebit(expense *ledger.Transaction) error {
	if expense.Type != ledger.TransactionTypeExpense {
		return shared.NewDomainError("INVALID_DEBIT", "Debit entries must be expense transactions")
	}
	c.debits = append(c.debits, expense)
	c.UpdatedAt = time.Now()
	return nil
}

// Credits returns the credit entries in insertion order. Fully consumed
// entries remain in the list with a zero amount, preserving ledger history.
func (c *Client) Credits() []*ledger.Transaction {
	return c.credits
}

// Debits returns the expense entries in insertion order
func (c *Client) Debits() []*ledger.Transaction {
	return c.debits
}

// AvailableCredit returns the sum of all credit entry amounts. Zero-amount
// entries contribute nothing but are still counted.
func (c *Client) AvailableCredit() valueobject.Money {
	total := valueobject.Zero(valueobject.DefaultCurrency)
	for _, credit := range c.credits {
		total = total.MustAdd(credit.Amount)
	}
	return total
}

// UseCredit consumes credit oldest-first until the requested amount is
// covered or the list is exhausted. Each visited entry is reduced by at most
// its remaining amount; entries are zeroed, never removed. Returns the total
// actually consumed, min(requested, available), together with the entries
// that were mutated in traversal order so callers can persist them in that
// same order.
func (c *Client) UseCredit(requested valueobject.Money) (valueobject.Money, []*ledger.Transaction) {
	consumed := valueobject.Zero(requested.Currency())
	touched := make([]*ledger.Transaction, 0)

	if !requested.IsPositive() {
		return consumed, touched
	}

	for _, credit := range c.credits {
		remaining := requested.MustSubtract(consumed)
		if !remaining.IsPositive() {
			break
		}
		taken := credit.Consume(remaining)
		if taken.IsPositive() {
			consumed = consumed.MustAdd(taken)
			touched = append(touched, credit)
		}
	}

	if consumed.IsPositive() {
		c.UpdatedAt = time.Now()
		c.IncrementVersion()
		c.AddDomainEvent(NewCreditConsumedEvent(c, consumed))
	}

	return consumed, touched
}
