package trade

import (
	"time"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// Order represents an order aggregate root. It references its client without
// owning it, holds the ordered line items and the income entries applied
// against it, and carries the production status flags.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string
	OrderDate   time.Time
	Client      *partner.Client
	Discount    valueobject.Money

	items          []*OrderItem
	appliedIncomes []*ledger.Transaction
	flags          StatusFlags
}

// NewOrder creates a new order for a client
func NewOrder(orderNumber string, orderDate time.Time, client *partner.Client) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if client == nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Order requires a client")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		OrderDate:         orderDate,
		Client:            client,
		Discount:          valueobject.Zero(valueobject.DefaultCurrency),
		items:             make([]*OrderItem, 0),
		appliedIncomes:    make([]*ledger.Transaction, 0),
		flags:             NewStatusFlags(),
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// RehydrateOrder rebuilds an order from storage. No domain events are
// raised; items and applied incomes must already be in insertion order.
func RehydrateOrder(
	root shared.BaseAggregateRoot,
	orderNumber string,
	orderDate time.Time,
	client *partner.Client,
	discount valueobject.Money,
	items []*OrderItem,
	appliedIncomes []*ledger.Transaction,
	flags StatusFlags,
) *Order {
	if items == nil {
		items = make([]*OrderItem, 0)
	}
	if appliedIncomes == nil {
		appliedIncomes = make([]*ledger.Transaction, 0)
	}
	if flags == nil {
		flags = NewStatusFlags()
	}
	return &Order{
		BaseAggregateRoot: root,
		OrderNumber:       orderNumber,
		OrderDate:         orderDate,
		Client:            client,
		Discount:          discount,
		items:             items,
		appliedIncomes:    appliedIncomes,
		flags:             flags,
	}
}

// AddItem appends a line item. No validation happens here; the rate may
// still be unset.
func (o *Order) AddItem(item *OrderItem) {
	o.items = append(o.items, item)
	o.UpdatedAt = time.Now()
}

// Items returns the line items in insertion order
func (o *Order) Items() []*OrderItem {
	return o.items
}

// SetDiscount sets the order-level discount
func (o *Order) SetDiscount(discount valueobject.Money) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	o.Discount = discount
	o.UpdatedAt = time.Now()
	return nil
}

// UpdateFlag sets or clears a status flag. Unknown flags are rejected and
// leave the order untouched.
func (o *Order) UpdateFlag(flag StatusFlag, value bool) error {
	if err := o.flags.Set(flag, value); err != nil {
		return err
	}
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderFlagUpdatedEvent(o, flag, value))
	return nil
}

// Flags returns the current flag states
func (o *Order) Flags() StatusFlags {
	return o.flags
}

// HasFlag reports whether the given flag is set
func (o *Order) HasFlag(flag StatusFlag) bool {
	return o.flags.Has(flag)
}

// AppliedIncomes returns the income entries recorded against this order
func (o *Order) AppliedIncomes() []*ledger.Transaction {
	return o.appliedIncomes
}

// RecordIncome appends an income entry already tied to this order, e.g. when
// rebuilding the aggregate from storage
func (o *Order) RecordIncome(income *ledger.Transaction) error {
	if income.OrderID == nil || *income.OrderID != o.OrderNumber {
		return shared.NewDomainError("ORDER_MISMATCH", "Income entry does not reference this order")
	}
	o.appliedIncomes = append(o.appliedIncomes, income)
	o.UpdatedAt = time.Now()
	return nil
}

// TotalBeforeDiscount returns the sum of line totals
func (o *Order) TotalBeforeDiscount() valueobject.Money {
	total := valueobject.Zero(valueobject.DefaultCurrency)
	for _, item := range o.items {
		total = total.MustAdd(item.Total())
	}
	return total
}

// TotalAfterDiscount returns the item total minus the discount. It may be
// negative when the discount exceeds the total; it is not clamped.
func (o *Order) TotalAfterDiscount() valueobject.Money {
	return o.TotalBeforeDiscount().MustSubtract(o.Discount)
}

// TotalReceived returns the sum of income amounts applied to this order
func (o *Order) TotalReceived() valueobject.Money {
	total := valueobject.Zero(valueobject.DefaultCurrency)
	for _, income := range o.appliedIncomes {
		total = total.MustAdd(income.Amount)
	}
	return total
}

// BalanceDue returns TotalAfterDiscount minus TotalReceived. Negative means
// overpayment; "fully paid" is exactly zero.
func (o *Order) BalanceDue() valueobject.Money {
	return o.TotalAfterDiscount().MustSubtract(o.TotalReceived())
}

// ApplyClientCredit consumes the client's available credit against the
// outstanding balance. When anything was consumed, a new income entry is
// created with the current date, tied to this order, and recorded against
// it. The consumed credit entries are returned in the order they were
// mutated so the caller can persist them in that same order. Repeated calls
// are safe: each call consumes only what is still outstanding and still
// available.
func (o *Order) ApplyClientCredit(now time.Time) (*ledger.Transaction, []*ledger.Transaction, error) {
	amountToCover := o.BalanceDue()
	if !amountToCover.IsPositive() {
		return nil, nil, nil
	}

	consumed, touched := o.Client.UseCredit(amountToCover)
	if !consumed.IsPositive() {
		return nil, nil, nil
	}

	income, err := ledger.NewIncome(o.Client.ID, o.Client.Name, consumed, &now, ledger.ModeCredit, ledger.AutoAppliedNote)
	if err != nil {
		return nil, nil, err
	}
	income.WithOrderID(o.OrderNumber)

	o.appliedIncomes = append(o.appliedIncomes, income)
	o.UpdatedAt = now
	o.IncrementVersion()
	o.AddDomainEvent(NewOrderCreditAppliedEvent(o, income))

	return income, touched, nil
}
