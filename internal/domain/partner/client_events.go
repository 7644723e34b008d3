package partner

import (
	"github.com/google/uuid"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// Aggregate type constant
const AggregateTypeClient = "Client"

// Event type constants
const (
	EventTypeClientCreated  = "ClientCreated"
	EventTypeCreditAdded    = "CreditAdded"
	EventTypeCreditConsumed = "CreditConsumed"
)

// ClientCreatedEvent is published when a new client is registered
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		Name:            client.Name,
		Email:           client.Email,
	}
}

// CreditAddedEvent is published when an income entry is added to the
// client's credit list
type CreditAddedEvent struct {
	shared.BaseDomainEvent
	ClientID      uuid.UUID         `json:"client_id"`
	TransactionID uuid.UUID         `json:"transaction_id"`
	Amount        valueobject.Money `json:"amount"`
}

// NewCreditAddedEvent creates a new CreditAddedEvent
func NewCreditAddedEvent(client *Client, income *ledger.Transaction) *CreditAddedEvent {
	return &CreditAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditAdded, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		TransactionID:   income.ID,
		Amount:          income.Amount,
	}
}

// CreditConsumedEvent is published when credit is consumed against an order
type CreditConsumedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID         `json:"client_id"`
	Consumed valueobject.Money `json:"consumed"`
}

// NewCreditConsumedEvent creates a new CreditConsumedEvent
func NewCreditConsumedEvent(client *Client, consumed valueobject.Money) *CreditConsumedEvent {
	return &CreditConsumedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditConsumed, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		Consumed:        consumed,
	}
}
