package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/domain/trade"
)

// OrderModel is the persistence model for the Order aggregate. The six
// production status flags are stored as independent boolean columns.
type OrderModel struct {
	AggregateModel
	OrderNumber      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	OrderDate        time.Time `gorm:"not null;index"`
	ClientID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DiscountMinor    int64     `gorm:"not null;default:0"`
	Currency         string    `gorm:"type:varchar(3);not null"`
	AwaitingDesign   bool      `gorm:"not null;default:false"`
	AwaitingMaterial bool      `gorm:"not null;default:false"`
	AwaitingPrint    bool      `gorm:"not null;default:false"`
	Printing         bool      `gorm:"not null;default:false"`
	Printed          bool      `gorm:"not null;default:false"`
	Delivered        bool      `gorm:"not null;default:false"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.OrderDate = o.OrderDate
	m.ClientID = o.Client.ID
	m.DiscountMinor = o.Discount.Minor()
	m.Currency = string(o.Discount.Currency())
	m.AwaitingDesign = o.HasFlag(trade.FlagAwaitingDesign)
	m.AwaitingMaterial = o.HasFlag(trade.FlagAwaitingMaterial)
	m.AwaitingPrint = o.HasFlag(trade.FlagAwaitingPrint)
	m.Printing = o.HasFlag(trade.FlagPrinting)
	m.Printed = o.HasFlag(trade.FlagPrinted)
	m.Delivered = o.HasFlag(trade.FlagDelivered)

	m.Items = make([]OrderItemModel, 0, len(o.Items()))
	for i, item := range o.Items() {
		var itemModel OrderItemModel
		itemModel.FromDomain(o.ID, item)
		itemModel.Position = i
		m.Items = append(m.Items, itemModel)
	}
}

// Flags converts the boolean columns back to a domain flag set
func (m *OrderModel) Flags() trade.StatusFlags {
	flags := trade.NewStatusFlags()
	flags[trade.FlagAwaitingDesign] = m.AwaitingDesign
	flags[trade.FlagAwaitingMaterial] = m.AwaitingMaterial
	flags[trade.FlagAwaitingPrint] = m.AwaitingPrint
	flags[trade.FlagPrinting] = m.Printing
	flags[trade.FlagPrinted] = m.Printed
	flags[trade.FlagDelivered] = m.Delivered
	return flags
}

// OrderItemModel is the persistence model for an order line item
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(200);not null"`
	Quantity    int64     `gorm:"not null"`
	RateMinor   int64     `gorm:"not null;default:0"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// FromDomain populates the persistence model from a domain OrderItem
func (m *OrderItemModel) FromDomain(orderID uuid.UUID, item *trade.OrderItem) {
	m.ID = item.ID
	m.OrderID = orderID
	m.Description = item.Description
	m.Quantity = item.Quantity
	m.RateMinor = item.Rate.Minor()
	m.Currency = string(item.Rate.Currency())
	m.CreatedAt = item.CreatedAt
	m.UpdatedAt = item.UpdatedAt
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() (*trade.OrderItem, error) {
	rate, err := valueobject.NewMoney(m.RateMinor, valueobject.Currency(m.Currency))
	if err != nil {
		return nil, err
	}
	return &trade.OrderItem{
		ID:          m.ID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Rate:        rate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
