package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// ClientService handles client registration and the client-facing side of
// the transaction ledger
type ClientService struct {
	clientRepo partner.ClientRepository
	txRepo     ledger.TransactionRepository
	ledger     *ledger.Ledger
	logger     *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, txRepo ledger.TransactionRepository, l *ledger.Ledger, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		txRepo:     txRepo,
		ledger:     l,
		logger:     logger,
	}
}

// RegisterClientRequest represents a request to register a new client
type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// TransactionRequest represents a payment or expense to record for a client.
// Amount is in minor units (paise). Date is DD-MM-YYYY; a malformed date is
// tolerated and recorded as pending.
type TransactionRequest struct {
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
	Date        string `json:"date"`
	Mode        string `json:"mode" binding:"required"`
	Note        string `json:"note"`
}

// Register creates and persists a new client
func (s *ClientService) Register(ctx context.Context, req RegisterClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info("client registered",
		zap.String("client_id", client.ID.String()),
		zap.String("name", client.Name),
	)

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client with its credit and debit history
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List returns all clients
func (s *ClientService) List(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return responses, nil
}

// AvailableCredit returns the client's unconsumed credit total
func (s *ClientService) AvailableCredit(ctx context.Context, id uuid.UUID) (valueobject.Money, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return valueobject.ZeroINR(), err
	}
	return client.AvailableCredit(), nil
}

// AddPayment records an income entry as unconsumed credit for the client.
// The ledger entry is persisted with the client's id.
func (s *ClientService) AddPayment(ctx context.Context, clientID uuid.UUID, req TransactionRequest) (*TransactionResponse, error) {
	return s.addTransaction(ctx, clientID, req, ledger.TransactionTypeIncome)
}

// AddExpense records an expense entry in the client's debit history
func (s *ClientService) AddExpense(ctx context.Context, clientID uuid.UUID, req TransactionRequest) (*TransactionResponse, error) {
	return s.addTransaction(ctx, clientID, req, ledger.TransactionTypeExpense)
}

func (s *ClientService) addTransaction(ctx context.Context, clientID uuid.UUID, req TransactionRequest, txType ledger.TransactionType) (*TransactionResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	date, err := shared.ParseDate(req.Date)
	if err != nil {
		// Recoverable per record: keep the entry, drop the date.
		if errors.Is(err, shared.ErrInvalidDateFormat) {
			s.logger.Warn("invalid date format, recording as pending",
				zap.String("date", req.Date),
				zap.String("client", client.Name),
			)
			date = nil
		} else {
			return nil, err
		}
	}

	amount := valueobject.NewMoneyINR(req.AmountMinor)

	var tx *ledger.Transaction
	switch txType {
	case ledger.TransactionTypeIncome:
		tx, err = ledger.NewIncome(client.ID, client.Name, amount, date, req.Mode, req.Note)
		if err != nil {
			return nil, err
		}
		if err := client.AddCredit(tx); err != nil {
			return nil, err
		}
	case ledger.TransactionTypeExpense:
		tx, err = ledger.NewExpense(client.ID, client.Name, amount, date, req.Mode, req.Note)
		if err != nil {
			return nil, err
		}
		if err := client.AddDebit(tx); err != nil {
			return nil, err
		}
	default:
		return nil, shared.ErrUnknownTransactionType
	}

	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	s.ledger.Append(tx)

	response := ToTransactionResponse(tx)
	return &response, nil
}
