package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
)

func TestGormTransactionRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	client, err := partner.NewClient("Ron", "")
	require.NoError(t, err)

	t.Run("round-trips an entry with a date", func(t *testing.T) {
		date, err := shared.ParseDate("20-03-2024")
		require.NoError(t, err)

		income, err := ledger.NewIncome(client.ID, client.Name, valueobject.NewMoneyINR(245000), date, "online", "Advance")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, income))

		found, err := repo.FindByID(ctx, income.ID)
		require.NoError(t, err)
		assert.Equal(t, ledger.TransactionTypeIncome, found.Type)
		assert.Equal(t, int64(245000), found.Amount.Minor())
		require.NotNil(t, found.Date)
		assert.Equal(t, "20-03-2024", found.Date.Format(shared.DateLayout))
		assert.Equal(t, "Ron", found.ClientName)
	})

	t.Run("round-trips a pending-date entry", func(t *testing.T) {
		expense, err := ledger.NewExpense(client.ID, client.Name, valueobject.NewMoneyINR(10000), nil, "cash", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, expense))

		found, err := repo.FindByID(ctx, expense.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Date)
		assert.False(t, found.HasDate())
	})

	t.Run("saving again updates the amount in place", func(t *testing.T) {
		income, err := ledger.NewIncome(client.ID, client.Name, valueobject.NewMoneyINR(100000), nil, "online", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, income))

		income.Consume(valueobject.NewMoneyINR(60000))
		require.NoError(t, repo.Save(ctx, income))

		found, err := repo.FindByID(ctx, income.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), found.Amount.Minor())
	})

	t.Run("refuses to persist an entry without a client id", func(t *testing.T) {
		orphan := &ledger.Transaction{
			BaseEntity: shared.NewBaseEntity(),
			Type:       ledger.TransactionTypeIncome,
			Amount:     valueobject.NewMoneyINR(1000),
		}
		err := repo.Save(ctx, orphan)
		assert.ErrorIs(t, err, shared.ErrMissingClientID)
	})

	t.Run("missing entry returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTransactionRepository_UnknownType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	// A corrupt row with an unrecognized discriminator must surface an
	// explicit error, not be silently skipped or coerced.
	row := models.TransactionModel{
		Type:        "transfer",
		AmountMinor: 1000,
		Currency:    "INR",
		ClientID:    uuid.New(),
		ClientName:  "Ron",
	}
	row.ID = uuid.New()
	require.NoError(t, db.Create(&row).Error)

	_, err := repo.FindByID(ctx, row.ID)
	assert.ErrorIs(t, err, shared.ErrUnknownTransactionType)
}

func TestGormTransactionRepository_ListForClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	ron, err := partner.NewClient("Ron", "")
	require.NoError(t, err)
	meena, err := partner.NewClient("Meena", "")
	require.NoError(t, err)

	for _, c := range []*partner.Client{ron, meena} {
		income, err := ledger.NewIncome(c.ID, c.Name, valueobject.NewMoneyINR(5000), nil, "cash", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, income))
	}

	entries, err := repo.ListForClient(ctx, ron.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ron.ID, entries[0].ClientID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
