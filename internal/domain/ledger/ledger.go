package ledger

import (
	"github.com/google/uuid"
)

// Ledger is an explicit in-memory registry of all transactions for one run.
// It replaces implicit global accumulation so independent runs (and tests)
// never leak entries into each other. Append-only.
type Ledger struct {
	entries []*Transaction
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{entries: make([]*Transaction, 0)}
}

// Append records a transaction in insertion order
func (l *Ledger) Append(t *Transaction) {
	l.entries = append(l.entries, t)
}

// Entries returns all transactions in insertion order
func (l *Ledger) Entries() []*Transaction {
	return l.entries
}

// Len returns the number of recorded transactions
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Incomes returns all income entries in insertion order
func (l *Ledger) Incomes() []*Transaction {
	return l.filter(func(t *Transaction) bool { return t.Type == TransactionTypeIncome })
}

// Expenses returns all expense entries in insertion order
func (l *Ledger) Expenses() []*Transaction {
	return l.filter(func(t *Transaction) bool { return t.Type == TransactionTypeExpense })
}

// Sync copies the amount of each given transaction onto the ledger entry
// with the same id. Credit consumption operates on aggregates rehydrated
// from storage, not on the objects recorded here, so consumed amounts must
// be written back or reports would keep counting the original values.
// Transactions with no matching entry are ignored.
func (l *Ledger) Sync(updated ...*Transaction) {
	for _, t := range updated {
		for _, entry := range l.entries {
			if entry.ID == t.ID {
				entry.Amount = t.Amount
				break
			}
		}
	}
}

// ForClient returns all entries belonging to the given client
func (l *Ledger) ForClient(clientID uuid.UUID) []*Transaction {
	return l.filter(func(t *Transaction) bool { return t.ClientID == clientID })
}

func (l *Ledger) filter(keep func(*Transaction) bool) []*Transaction {
	result := make([]*Transaction, 0, len(l.entries))
	for _, t := range l.entries {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
