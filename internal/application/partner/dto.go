package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Amount      valueobject.Money `json:"amount"`
	Date        *time.Time        `json:"date,omitempty"`
	PendingDate bool              `json:"pending_date"`
	Mode        string            `json:"mode"`
	Note        string            `json:"note,omitempty"`
	ClientID    uuid.UUID         `json:"client_id"`
	ClientName  string            `json:"client_name"`
	OrderID     *string           `json:"order_id,omitempty"`
}

// ToTransactionResponse converts a ledger transaction to its response form
func ToTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type.String(),
		Amount:      tx.Amount,
		Date:        tx.Date,
		PendingDate: !tx.HasDate(),
		Mode:        tx.Mode,
		Note:        tx.Note,
		ClientID:    tx.ClientID,
		ClientName:  tx.ClientName,
		OrderID:     tx.OrderID,
	}
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Email           string                `json:"email,omitempty"`
	AvailableCredit valueobject.Money     `json:"available_credit"`
	Credits         []TransactionResponse `json:"credits"`
	Debits          []TransactionResponse `json:"debits"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ToClientResponse converts a client to its response form
func ToClientResponse(c *partner.Client) ClientResponse {
	credits := make([]TransactionResponse, 0, len(c.Credits()))
	for _, tx := range c.Credits() {
		credits = append(credits, ToTransactionResponse(tx))
	}
	debits := make([]TransactionResponse, 0, len(c.Debits()))
	for _, tx := range c.Debits() {
		debits = append(debits, ToTransactionResponse(tx))
	}

	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		AvailableCredit: c.AvailableCredit(),
		Credits:         credits,
		Debits:          debits,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
