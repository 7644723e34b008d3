package ledger

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository defines the persistence contract for ledger entries
type TransactionRepository interface {
	// Save persists a transaction (insert or update by id)
	Save(ctx context.Context, tx *Transaction) error

	// FindByID finds a transaction by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// ListForClient returns all transactions for a client in insertion order
	ListForClient(ctx context.Context, clientID uuid.UUID) ([]*Transaction, error)

	// List returns all transactions in insertion order
	List(ctx context.Context) ([]*Transaction, error)
}
