package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/domain/trade"
)

// OrderService handles order entry and credit application
type OrderService struct {
	orderRepo  trade.OrderRepository
	clientRepo partner.ClientRepository
	txRepo     ledger.TransactionRepository
	ledger     *ledger.Ledger
	numbers    *trade.OrderNumberGenerator
	logger     *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	clientRepo partner.ClientRepository,
	txRepo ledger.TransactionRepository,
	l *ledger.Ledger,
	numbers *trade.OrderNumberGenerator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		txRepo:     txRepo,
		ledger:     l,
		numbers:    numbers,
		logger:     logger,
	}
}

// CreateOrderItemRequest represents one line item of a new order. Rate is in
// minor units per unit.
type CreateOrderItemRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
	Quantity    int64  `json:"quantity" binding:"required,gt=0"`
	RateMinor   int64  `json:"rate_minor" binding:"gte=0"`
}

// CreateOrderRequest represents a request to create a new order. The date is
// DD-MM-YYYY and, unlike transaction dates, is required to parse: an order
// without a valid date cannot be numbered.
type CreateOrderRequest struct {
	ClientID      uuid.UUID                `json:"client_id" binding:"required"`
	Date          string                   `json:"date" binding:"required"`
	DiscountMinor int64                    `json:"discount_minor" binding:"gte=0"`
	Items         []CreateOrderItemRequest `json:"items"`
	Flags         []string                 `json:"flags"`
}

// Create creates a new order, generates its number from the order date, and
// persists it
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, fmt.Errorf("order date is required: %w", shared.ErrInvalidDateFormat)
	}

	orderNumber := s.numbers.Next(*date)
	order, err := trade.NewOrder(orderNumber, *date, client)
	if err != nil {
		return nil, err
	}

	for _, itemReq := range req.Items {
		item, err := trade.NewOrderItem(itemReq.Description, itemReq.Quantity)
		if err != nil {
			return nil, err
		}
		if err := item.SetRate(valueobject.NewMoneyINR(itemReq.RateMinor)); err != nil {
			return nil, err
		}
		order.AddItem(item)
	}

	if req.DiscountMinor > 0 {
		if err := order.SetDiscount(valueobject.NewMoneyINR(req.DiscountMinor)); err != nil {
			return nil, err
		}
	}

	for _, flag := range req.Flags {
		if err := order.UpdateFlag(trade.StatusFlag(flag), true); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("client", client.Name),
		zap.String("total", order.TotalAfterDiscount().String()),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List returns orders matching the filter
func (s *OrderService) List(ctx context.Context, filter trade.OrderFilter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(o))
	}
	return responses, nil
}

// UpdateFlag sets or clears one status flag on an order
func (s *OrderService) UpdateFlag(ctx context.Context, orderID uuid.UUID, flag string, value bool) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateFlag(trade.StatusFlag(flag), value); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// ApplyCredit consumes the order's client credit against its outstanding
// balance and records the consumption as a new ledger income tied to the
// order. Mutated credit entries are saved individually in traversal order;
// entries saved before a mid-traversal failure remain saved - there is no
// rollback across the sequence, so a retry simply resumes from the already
// persisted state.
func (s *OrderService) ApplyCredit(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	income, touched, err := order.ApplyClientCredit(time.Now())
	if err != nil {
		return nil, err
	}

	if income == nil {
		// Nothing outstanding or no credit available.
		response := ToOrderResponse(order)
		return &response, nil
	}

	for _, credit := range touched {
		if err := s.txRepo.Save(ctx, credit); err != nil {
			s.logger.Error("failed to persist consumed credit entry",
				zap.String("transaction_id", credit.ID.String()),
				zap.String("order_number", order.OrderNumber),
				zap.Error(err),
			)
			return nil, fmt.Errorf("saving consumed credit entry: %w", err)
		}
	}
	// The consumed entries came from a rehydrated aggregate; push their
	// reduced amounts back onto the reporting ledger's own copies.
	s.ledger.Sync(touched...)

	if err := s.txRepo.Save(ctx, income); err != nil {
		return nil, fmt.Errorf("saving applied income: %w", err)
	}
	s.ledger.Append(income)

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("client credit applied",
		zap.String("order_number", order.OrderNumber),
		zap.String("client", order.Client.Name),
		zap.String("consumed", income.Amount.String()),
		zap.String("balance_due", order.BalanceDue().String()),
	)

	response := ToOrderResponse(order)
	return &response, nil
}
