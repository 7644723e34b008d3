package trade

import (
	"time"

	"github.com/google/uuid"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/domain/trade"
)

// OrderItemResponse represents a line item in API responses
type OrderItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	Quantity    int64             `json:"quantity"`
	Rate        valueobject.Money `json:"rate"`
	Total       valueobject.Money `json:"total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                  uuid.UUID                        `json:"id"`
	OrderNumber         string                           `json:"order_number"`
	OrderDate           time.Time                        `json:"order_date"`
	ClientID            uuid.UUID                        `json:"client_id"`
	ClientName          string                           `json:"client_name"`
	Items               []OrderItemResponse              `json:"items"`
	Discount            valueobject.Money                `json:"discount"`
	TotalBeforeDiscount valueobject.Money                `json:"total_before_discount"`
	TotalAfterDiscount  valueobject.Money                `json:"total_after_discount"`
	TotalReceived       valueobject.Money                `json:"total_received"`
	BalanceDue          valueobject.Money                `json:"balance_due"`
	FullyPaid           bool                             `json:"fully_paid"`
	Flags               map[string]bool                  `json:"flags"`
	AppliedIncomes      []partnerapp.TransactionResponse `json:"applied_incomes"`
}

// ToOrderResponse converts an order to its response form. FullyPaid is true
// only when the balance due is exactly zero; an overpaid order is not
// "fully paid".
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Total:       item.Total(),
		})
	}

	flags := make(map[string]bool, len(trade.AllStatusFlags))
	for _, f := range trade.AllStatusFlags {
		flags[f.String()] = o.HasFlag(f)
	}

	applied := make([]partnerapp.TransactionResponse, 0, len(o.AppliedIncomes()))
	for _, income := range o.AppliedIncomes() {
		applied = append(applied, partnerapp.ToTransactionResponse(income))
	}

	return OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		OrderDate:           o.OrderDate,
		ClientID:            o.Client.ID,
		ClientName:          o.Client.Name,
		Items:               items,
		Discount:            o.Discount,
		TotalBeforeDiscount: o.TotalBeforeDiscount(),
		TotalAfterDiscount:  o.TotalAfterDiscount(),
		TotalReceived:       o.TotalReceived(),
		BalanceDue:          o.BalanceDue(),
		FullyPaid:           o.BalanceDue().IsZero(),
		Flags:               flags,
		AppliedIncomes:      applied,
	}
}
