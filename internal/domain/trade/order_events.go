package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderFlagUpdated   = "OrderFlagUpdated"
	EventTypeOrderCreditApplied = "OrderCreditApplied"
)

// OrderCreatedEvent is published when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	OrderDate   time.Time `json:"order_date"`
	ClientID    uuid.UUID `json:"client_id"`
	ClientName  string    `json:"client_name"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		OrderDate:       order.OrderDate,
		ClientID:        order.Client.ID,
		ClientName:      order.Client.Name,
	}
}

// OrderFlagUpdatedEvent is published when a status flag changes
type OrderFlagUpdatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string     `json:"order_number"`
	Flag        StatusFlag `json:"flag"`
	Value       bool       `json:"value"`
}

// NewOrderFlagUpdatedEvent creates a new OrderFlagUpdatedEvent
func NewOrderFlagUpdatedEvent(order *Order, flag StatusFlag, value bool) *OrderFlagUpdatedEvent {
	return &OrderFlagUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderFlagUpdated, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		Flag:            flag,
		Value:           value,
	}
}

// OrderCreditAppliedEvent is published when client credit is applied to an order
type OrderCreditAppliedEvent struct {
	shared.BaseDomainEvent
	OrderNumber   string            `json:"order_number"`
	TransactionID uuid.UUID         `json:"transaction_id"`
	Amount        valueobject.Money `json:"amount"`
}

// NewOrderCreditAppliedEvent creates a new OrderCreditAppliedEvent
func NewOrderCreditAppliedEvent(order *Order, income *ledger.Transaction) *OrderCreditAppliedEvent {
	return &OrderCreditAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreditApplied, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		TransactionID:   income.ID,
		Amount:          income.Amount,
	}
}
