package trade

import (
	"context"

	"github.com/google/uuid"
)

// OrderFilter narrows order listings
type OrderFilter struct {
	ClientName string
	Flags      []StatusFlag // orders must have every listed flag set
}

// OrderRepository defines the persistence contract for orders
type OrderRepository interface {
	// Save persists an order and its items (insert or update by id)
	Save(ctx context.Context, order *Order) error

	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its generated number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// List returns orders matching the filter, oldest first
	List(ctx context.Context, filter OrderFilter) ([]*Order, error)
}
