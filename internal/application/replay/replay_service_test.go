package replay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/trade"
	"github.com/smedge/backend/internal/infrastructure/loader"
	"github.com/smedge/backend/internal/infrastructure/persistence"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
)

// newReplayService wires the full service stack over an in-memory database
func newReplayService(t *testing.T) (*ReplayService, *partnerapp.ClientService, *tradeapp.OrderService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.TransactionModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	))

	clientRepo := persistence.NewGormClientRepository(db)
	txRepo := persistence.NewGormTransactionRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	l := ledger.NewLedger()
	logger := zap.NewNop()

	clients := partnerapp.NewClientService(clientRepo, txRepo, l, logger)
	orders := tradeapp.NewOrderService(orderRepo, clientRepo, txRepo, l, trade.NewOrderNumberGenerator(), logger)

	return NewReplayService(clients, orders, logger), clients, orders
}

const replayData = `
clients:
  - name: Ron
    payments:
      - amount: 2000.00
        date: 01-03-2024
        mode: online
      - amount: 1000.00
        date: 05-03-2024
        mode: cash
  - name: Meena
transactions:
  - client: Ron
    type: expense
    amount: 150.00
    date: 10-03-2024
    mode: cash
    note: vinyl
  - client: Ghost
    type: income
    amount: 99.00
orders:
  - client: Ron
    date: 15-03-2024
    discount: 80.00
    items:
      - description: Banner 6x3
        quantity: 2
        rate: 500.00
      - description: Visiting cards
        quantity: 1000
        rate: 1.00
    flags: [awaiting_design]
`

func TestReplay(t *testing.T) {
	svc, clients, orders := newReplayService(t)
	ctx := context.Background()

	file, err := loader.Parse([]byte(replayData))
	require.NoError(t, err)

	result, err := svc.Replay(ctx, file)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Clients)
	assert.Equal(t, 2, result.Payments)
	assert.Equal(t, 1, result.Transactions)
	assert.Equal(t, 1, result.SkippedTransactions)
	assert.Equal(t, 1, result.Orders)
	assert.Equal(t, 1, result.CreditsApplied)
	require.Len(t, result.OrderIDs, 1)

	// Order total 1920.00 covered in full by Ron's 3000.00 credit.
	order, err := orders.GetByID(ctx, result.OrderIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "ORD-15032024-001", order.OrderNumber)
	assert.True(t, order.FullyPaid)
	assert.Equal(t, int64(192000), order.TotalReceived.Minor())

	// 3000.00 in, 1920.00 consumed leaves 1080.00.
	all, err := clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, c := range all {
		if c.Name == "Ron" {
			assert.Equal(t, int64(108000), c.AvailableCredit.Minor())
		}
	}
}

func TestReplay_UnknownTransactionType(t *testing.T) {
	svc, _, _ := newReplayService(t)

	file, err := loader.Parse([]byte(`
clients:
  - name: Ron
transactions:
  - client: Ron
    type: transfer
    amount: 10.00
`))
	require.NoError(t, err)

	_, err = svc.Replay(context.Background(), file)
	assert.ErrorIs(t, err, shared.ErrUnknownTransactionType)
}

func TestReplay_BadOrderDateIsFatal(t *testing.T) {
	svc, _, _ := newReplayService(t)

	file, err := loader.Parse([]byte(`
clients:
  - name: Ron
orders:
  - client: Ron
    date: 2024-03-15
    items:
      - description: Banner
        quantity: 1
        rate: 100.00
`))
	require.NoError(t, err)

	_, err = svc.Replay(context.Background(), file)
	assert.ErrorIs(t, err, shared.ErrInvalidDateFormat)
}

func TestReplay_MalformedPaymentDateIsPending(t *testing.T) {
	svc, clients, _ := newReplayService(t)
	ctx := context.Background()

	file, err := loader.Parse([]byte(`
clients:
  - name: Ron
    payments:
      - amount: 55.00
        date: 07-04-20204
        mode: online
`))
	require.NoError(t, err)

	result, err := svc.Replay(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Payments)

	all, err := clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Credits, 1)
	assert.True(t, all[0].Credits[0].PendingDate)
}
