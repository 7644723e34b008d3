package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByName(ctx context.Context, name string) (*partner.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*partner.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*partner.Client), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*ledger.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

// =============================================================================
// Tests
// =============================================================================

func newService(clientRepo *MockClientRepository, txRepo *MockTransactionRepository) (*ClientService, *ledger.Ledger) {
	l := ledger.NewLedger()
	return NewClientService(clientRepo, txRepo, l, zap.NewNop()), l
}

func TestClientServiceRegister(t *testing.T) {
	t.Run("registers and persists a client", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, _ := newService(clientRepo, txRepo)

		clientRepo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)

		resp, err := svc.Register(context.Background(), RegisterClientRequest{Name: "Ron", Email: "ron@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Ron", resp.Name)
		assert.True(t, resp.AvailableCredit.IsZero())
		clientRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid name without touching the repository", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, _ := newService(clientRepo, txRepo)

		_, err := svc.Register(context.Background(), RegisterClientRequest{Name: "   "})
		assert.Error(t, err)
		clientRepo.AssertNotCalled(t, "Save")
	})
}

func TestClientServiceAddPayment(t *testing.T) {
	t.Run("records income as unconsumed credit", func(t *testing.T) {
		client, _ := partner.NewClient("Ron", "")
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, l := newService(clientRepo, txRepo)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		txRepo.On("Save", mock.Anything, mock.AnythingOfType("*ledger.Transaction")).Return(nil)

		resp, err := svc.AddPayment(context.Background(), client.ID, TransactionRequest{
			AmountMinor: 200000,
			Date:        "20-03-2024",
			Mode:        "online",
			Note:        "Advance payment",
		})
		require.NoError(t, err)

		assert.Equal(t, "income", resp.Type)
		assert.False(t, resp.PendingDate)
		assert.Equal(t, int64(200000), client.AvailableCredit().Minor())
		assert.Equal(t, 1, l.Len())
		txRepo.AssertExpectations(t)
	})

	t.Run("malformed date downgrades to pending instead of failing", func(t *testing.T) {
		client, _ := partner.NewClient("Ron", "")
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, _ := newService(clientRepo, txRepo)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		txRepo.On("Save", mock.Anything, mock.AnythingOfType("*ledger.Transaction")).Return(nil)

		resp, err := svc.AddPayment(context.Background(), client.ID, TransactionRequest{
			AmountMinor: 245000,
			Date:        "07-04-20204", // typo year, unparsable
			Mode:        "online",
		})
		require.NoError(t, err)
		assert.True(t, resp.PendingDate)
		assert.Nil(t, resp.Date)
	})

	t.Run("unknown client propagates not found", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, _ := newService(clientRepo, txRepo)

		clientRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := svc.AddPayment(context.Background(), uuid.New(), TransactionRequest{AmountMinor: 100, Mode: "cash"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestClientServiceAddExpense(t *testing.T) {
	t.Run("records expense in debit history", func(t *testing.T) {
		client, _ := partner.NewClient("Ron", "")
		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, l := newService(clientRepo, txRepo)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		txRepo.On("Save", mock.Anything, mock.AnythingOfType("*ledger.Transaction")).Return(nil)

		resp, err := svc.AddExpense(context.Background(), client.ID, TransactionRequest{
			AmountMinor: 50000,
			Date:        "10-03-2024",
			Mode:        "cash",
			Note:        "vinyl sheets",
		})
		require.NoError(t, err)

		assert.Equal(t, "expense", resp.Type)
		assert.Len(t, client.Debits(), 1)
		assert.True(t, client.AvailableCredit().IsZero())
		assert.Equal(t, 1, l.Len())
	})
}

func TestClientServiceAvailableCredit(t *testing.T) {
	t.Run("returns the credit sum", func(t *testing.T) {
		client, _ := partner.NewClient("Ron", "")
		income, err := ledger.NewIncome(client.ID, client.Name, valueobject.NewMoneyINR(300000), nil, "online", "")
		require.NoError(t, err)
		require.NoError(t, client.AddCredit(income))

		clientRepo := new(MockClientRepository)
		txRepo := new(MockTransactionRepository)
		svc, _ := newService(clientRepo, txRepo)
		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		credit, err := svc.AvailableCredit(context.Background(), client.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(300000), credit.Minor())
	})
}
