package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// OrderItem represents a line item in an order. It is owned exclusively by
// one order. The rate starts at zero and is set separately; the line total
// is always rate x quantity.
type OrderItem struct {
	ID          uuid.UUID
	Description string
	Quantity    int64
	Rate        valueobject.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderItem creates a new order item with a zero rate
func NewOrderItem(description string, quantity int64) (*OrderItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	return &OrderItem{
		ID:          uuid.New(),
		Description: description,
		Quantity:    quantity,
		Rate:        valueobject.Zero(valueobject.DefaultCurrency),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetRate sets the per-unit rate
func (i *OrderItem) SetRate(rate valueobject.Money) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Rate cannot be negative")
	}
	i.Rate = rate
	i.UpdatedAt = time.Now()
	return nil
}

// Total returns rate x quantity
func (i *OrderItem) Total() valueobject.Money {
	return i.Rate.MultiplyInt(i.Quantity)
}
