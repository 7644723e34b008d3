package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/domain/trade"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM. Loading an
// order also loads its client aggregate and the income entries applied
// against the order.
type GormOrderRepository struct {
	db      *gorm.DB
	clients *GormClientRepository
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		clients: NewGormClientRepository(db),
	}
}

// Save persists an order and replaces its line items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	var model models.OrderModel
	model.FromDomain(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := model.Items
		model.Items = nil
		if err := tx.Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", model.ID).Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.preloaded(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.assemble(ctx, &model)
}

// FindByOrderNumber finds an order by its business order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.preloaded(ctx).First(&model, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.assemble(ctx, &model)
}

// List returns orders matching the filter, newest first
func (r *GormOrderRepository) List(ctx context.Context, filter trade.OrderFilter) ([]*trade.Order, error) {
	query := r.preloaded(ctx).Order("orders.order_date DESC, orders.created_at DESC")

	if filter.ClientName != "" {
		query = query.
			Joins("JOIN clients ON clients.id = orders.client_id").
			Where("clients.name = ?", filter.ClientName)
	}
	for _, flag := range filter.Flags {
		column, err := flagColumn(flag)
		if err != nil {
			return nil, err
		}
		query = query.Where(column+" = ?", true)
	}

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*trade.Order, 0, len(orderModels))
	for i := range orderModels {
		order, err := r.assemble(ctx, &orderModels[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		})
}

// assemble rebuilds the order aggregate: its client, line items, applied
// incomes, and flags
func (r *GormOrderRepository) assemble(ctx context.Context, model *models.OrderModel) (*trade.Order, error) {
	client, err := r.clients.FindByID(ctx, model.ClientID)
	if err != nil {
		return nil, err
	}

	items := make([]*trade.OrderItem, 0, len(model.Items))
	for i := range model.Items {
		item, err := model.Items[i].ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var incomeModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", model.OrderNumber).
		Order("created_at ASC").
		Find(&incomeModels).Error; err != nil {
		return nil, err
	}
	incomes, err := toDomainTransactions(incomeModels)
	if err != nil {
		return nil, err
	}

	discount, err := valueobject.NewMoney(model.DiscountMinor, valueobject.Currency(model.Currency))
	if err != nil {
		return nil, err
	}

	return trade.RehydrateOrder(
		model.ToDomainAggregateRoot(),
		model.OrderNumber,
		model.OrderDate,
		client,
		discount,
		items,
		incomes,
		model.Flags(),
	), nil
}

// flagColumn maps a status flag to its orders column
func flagColumn(flag trade.StatusFlag) (string, error) {
	switch flag {
	case trade.FlagAwaitingDesign:
		return "orders.awaiting_design", nil
	case trade.FlagAwaitingMaterial:
		return "orders.awaiting_material", nil
	case trade.FlagAwaitingPrint:
		return "orders.awaiting_print", nil
	case trade.FlagPrinting:
		return "orders.printing", nil
	case trade.FlagPrinted:
		return "orders.printed", nil
	case trade.FlagDelivered:
		return "orders.delivered", nil
	default:
		return "", shared.ErrInvalidStatusFlag
	}
}
