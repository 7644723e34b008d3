package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// TransactionType discriminates income from expense entries. It is carried
// explicitly in persisted records; reconstruction must match it exhaustively.
type TransactionType string

const (
	// TransactionTypeIncome represents money received from a client
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense represents money paid out
	TransactionTypeExpense TransactionType = "expense"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// Payment mode and note markers for credit auto-application
const (
	ModeCredit      = "credit"
	AutoAppliedNote = "Auto-applied to client credit"
)

// Transaction is a single ledger entry. The ledger is append-mostly: entries
// are never deleted, and the only field that changes after creation is the
// amount, which is reduced (never increased) when unconsumed credit is
// applied against an order.
type Transaction struct {
	shared.BaseEntity
	Type       TransactionType
	Date       *time.Time // nil when the source date was unparsable ("pending date")
	Amount     valueobject.Money
	Mode       string // free-text payment category: "online", "cash", "credit", ...
	Note       string
	ClientID   uuid.UUID
	ClientName string
	OrderID    *string // set when this income has been applied against an order
}

// NewIncome creates an income entry for a client. A nil date is allowed and
// marks the entry as pending-date.
func NewIncome(clientID uuid.UUID, clientName string, amount valueobject.Money, date *time.Time, mode, note string) (*Transaction, error) {
	return newTransaction(TransactionTypeIncome, clientID, clientName, amount, date, mode, note)
}

// NewExpense creates an expense entry for a client
func NewExpense(clientID uuid.UUID, clientName string, amount valueobject.Money, date *time.Time, mode, note string) (*Transaction, error) {
	return newTransaction(TransactionTypeExpense, clientID, clientName, amount, date, mode, note)
}

func newTransaction(txType TransactionType, clientID uuid.UUID, clientName string, amount valueobject.Money, date *time.Time, mode, note string) (*Transaction, error) {
	if clientID == uuid.Nil {
		return nil, shared.ErrMissingClientID
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount cannot be negative")
	}
	return &Transaction{
		BaseEntity: shared.NewBaseEntity(),
		Type:       txType,
		Date:       date,
		Amount:     amount,
		Mode:       mode,
		Note:       note,
		ClientID:   clientID,
		ClientName: clientName,
	}, nil
}

// WithOrderID marks the transaction as applied against an order
func (t *Transaction) WithOrderID(orderID string) *Transaction {
	t.OrderID = &orderID
	return t
}

// IsExtra reports whether this income is unconsumed or general credit,
// i.e. not tied to any order
func (t *Transaction) IsExtra() bool {
	return t.OrderID == nil
}

// IsAutoAppliedCredit reports whether this entry was created by automatic
// credit application. Such entries are excluded from reports because the
// money already appears as the payment that funded the credit.
func (t *Transaction) IsAutoAppliedCredit() bool {
	return t.Type == TransactionTypeIncome && t.Mode == ModeCredit && strings.Contains(t.Note, "Auto-applied")
}

// HasDate reports whether the entry carries a parseable date
func (t *Transaction) HasDate() bool {
	return t.Date != nil
}

// Consume reduces the entry's amount by up to requested and returns the
// amount actually taken: min(requested, remaining). The amount is
// monotonically non-increasing and never goes negative. A non-positive
// request takes nothing.
func (t *Transaction) Consume(requested valueobject.Money) valueobject.Money {
	if !requested.IsPositive() || !t.Amount.IsPositive() {
		return valueobject.Zero(t.Amount.Currency())
	}
	taken := requested
	if ok, _ := t.Amount.LessThan(requested); ok {
		taken = t.Amount
	}
	t.Amount = t.Amount.MustSubtract(taken)
	t.UpdatedAt = time.Now()
	return taken
}
