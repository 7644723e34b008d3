package replay

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/infrastructure/loader"
)

// ReplayService feeds a parsed data file through the application services:
// clients and their payments first, then standalone transactions, then
// orders with credit auto-application.
type ReplayService struct {
	clients *partnerapp.ClientService
	orders  *tradeapp.OrderService
	logger  *zap.Logger
}

// NewReplayService creates a new ReplayService
func NewReplayService(clients *partnerapp.ClientService, orders *tradeapp.OrderService, logger *zap.Logger) *ReplayService {
	return &ReplayService{
		clients: clients,
		orders:  orders,
		logger:  logger,
	}
}

// Result summarizes a replay run
type Result struct {
	Clients             int
	Payments            int
	Transactions        int
	SkippedTransactions int
	Orders              int
	SkippedOrders       int
	CreditsApplied      int
	OrderIDs            []uuid.UUID
}

// Replay applies the whole file. Transactions naming an unknown client are
// skipped with a warning; a malformed order is fatal.
func (s *ReplayService) Replay(ctx context.Context, file *loader.File) (*Result, error) {
	result := &Result{}
	byName := make(map[string]uuid.UUID)

	for _, rec := range file.Clients {
		resp, err := s.clients.Register(ctx, partnerapp.RegisterClientRequest{
			Name:  rec.Name,
			Email: rec.Email,
		})
		if err != nil {
			return nil, fmt.Errorf("registering client %q: %w", rec.Name, err)
		}
		byName[resp.Name] = resp.ID
		result.Clients++

		for _, payment := range rec.Payments {
			minor, err := toMinor(payment.Amount)
			if err != nil {
				return nil, fmt.Errorf("payment for %q: %w", rec.Name, err)
			}
			if _, err := s.clients.AddPayment(ctx, resp.ID, partnerapp.TransactionRequest{
				AmountMinor: minor,
				Date:        payment.Date,
				Mode:        payment.Mode,
				Note:        payment.Note,
			}); err != nil {
				return nil, fmt.Errorf("payment for %q: %w", rec.Name, err)
			}
			result.Payments++
		}
	}

	for _, rec := range file.Transactions {
		clientID, ok := byName[rec.Client]
		if !ok {
			s.logger.Warn("skipping transaction for unknown client",
				zap.String("client", rec.Client),
			)
			result.SkippedTransactions++
			continue
		}

		minor, err := toMinor(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction for %q: %w", rec.Client, err)
		}
		req := partnerapp.TransactionRequest{
			AmountMinor: minor,
			Date:        rec.Date,
			Mode:        rec.Mode,
			Note:        rec.Note,
		}

		switch rec.Type {
		case "income":
			_, err = s.clients.AddPayment(ctx, clientID, req)
		case "expense":
			_, err = s.clients.AddExpense(ctx, clientID, req)
		default:
			return nil, fmt.Errorf("transaction for %q has type %q: %w",
				rec.Client, rec.Type, shared.ErrUnknownTransactionType)
		}
		if err != nil {
			return nil, fmt.Errorf("transaction for %q: %w", rec.Client, err)
		}
		result.Transactions++
	}

	for _, rec := range file.Orders {
		clientID, ok := byName[rec.Client]
		if !ok {
			s.logger.Warn("skipping order for unknown client",
				zap.String("client", rec.Client),
			)
			result.SkippedOrders++
			continue
		}

		discount, err := toMinor(rec.Discount)
		if err != nil {
			return nil, fmt.Errorf("order for %q: %w", rec.Client, err)
		}

		items := make([]tradeapp.CreateOrderItemRequest, 0, len(rec.Items))
		for _, item := range rec.Items {
			rate, err := toMinor(item.Rate)
			if err != nil {
				return nil, fmt.Errorf("order for %q, item %q: %w", rec.Client, item.Description, err)
			}
			items = append(items, tradeapp.CreateOrderItemRequest{
				Description: item.Description,
				Quantity:    item.Quantity,
				RateMinor:   rate,
			})
		}

		created, err := s.orders.Create(ctx, tradeapp.CreateOrderRequest{
			ClientID:      clientID,
			Date:          rec.Date,
			DiscountMinor: discount,
			Items:         items,
			Flags:         rec.Flags,
		})
		if err != nil {
			return nil, fmt.Errorf("order for %q: %w", rec.Client, err)
		}
		result.Orders++
		result.OrderIDs = append(result.OrderIDs, created.ID)

		applied, err := s.orders.ApplyCredit(ctx, created.ID)
		if err != nil {
			return nil, fmt.Errorf("applying credit to %s: %w", created.OrderNumber, err)
		}
		if len(applied.AppliedIncomes) > 0 {
			result.CreditsApplied++
		}
	}

	return result, nil
}

func toMinor(amount loader.Amount) (int64, error) {
	money, err := valueobject.NewMoneyFromDecimal(amount.Decimal, valueobject.DefaultCurrency)
	if err != nil {
		return 0, err
	}
	return money.Minor(), nil
}
