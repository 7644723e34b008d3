package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

func date(t *testing.T, day, month, year int) *time.Time {
	t.Helper()
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func income(t *testing.T, l *ledger.Ledger, client string, minor int64, when *time.Time, mode, note string) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewIncome(uuid.New(), client, valueobject.NewMoneyINR(minor), when, mode, note)
	require.NoError(t, err)
	l.Append(tx)
	return tx
}

func expense(t *testing.T, l *ledger.Ledger, client string, minor int64, when *time.Time) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewExpense(uuid.New(), client, valueobject.NewMoneyINR(minor), when, "cash", "materials")
	require.NoError(t, err)
	l.Append(tx)
	return tx
}

func TestReceiptsByClient(t *testing.T) {
	t.Run("groups by client then month with pending bucket", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 200000, date(t, 20, 3, 2024), "online", "Advance payment")
		income(t, l, "Ron", 245000, date(t, 7, 4, 2024), "online", "Advance payment")
		income(t, l, "Ron", 50000, nil, "cash", "undated receipt")
		income(t, l, "Maya", 100000, date(t, 5, 3, 2024), "cash", "")

		result := NewReportService(l).ReceiptsByClient()

		require.Len(t, result.Clients, 2)
		ron := result.Clients[0]
		assert.Equal(t, "Ron", ron.ClientName)
		require.Len(t, ron.Months, 2)
		assert.Equal(t, time.March, ron.Months[0].Month.Month)
		assert.Equal(t, int64(200000), ron.Months[0].Subtotal.Minor())
		assert.Equal(t, time.April, ron.Months[1].Month.Month)
		require.Len(t, ron.Pending, 1)
		assert.Equal(t, int64(50000), ron.PendingSubtotal.Minor())
		assert.Equal(t, int64(495000), ron.Total.Minor())

		maya := result.Clients[1]
		assert.Equal(t, int64(100000), maya.Total.Minor())

		assert.Equal(t, int64(595000), result.GrandTotal.Minor())
	})

	t.Run("excludes zero-amount and auto-applied entries", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 100000, date(t, 1, 4, 2024), "online", "")
		income(t, l, "Ron", 0, date(t, 2, 4, 2024), "online", "fully consumed credit")
		applied := income(t, l, "Ron", 50000, date(t, 3, 4, 2024), ledger.ModeCredit, ledger.AutoAppliedNote)
		applied.WithOrderID("ORD-03042024-001")

		result := NewReportService(l).ReceiptsByClient()

		require.Len(t, result.Clients, 1)
		require.Len(t, result.Clients[0].Months, 1)
		assert.Len(t, result.Clients[0].Months[0].Entries, 1)
		assert.Equal(t, int64(100000), result.GrandTotal.Minor())
	})

	t.Run("client with only excluded entries does not surface", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 0, date(t, 1, 4, 2024), "online", "")

		result := NewReportService(l).ReceiptsByClient()
		assert.Empty(t, result.Clients)
		assert.True(t, result.GrandTotal.IsZero())
	})
}

func TestReceiptsByMonth(t *testing.T) {
	t.Run("sorts months chronologically across years", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 1000, date(t, 1, 1, 2025), "online", "")
		income(t, l, "Ron", 2000, date(t, 15, 11, 2024), "online", "")
		income(t, l, "Maya", 3000, date(t, 20, 11, 2024), "cash", "")

		result := NewReportService(l).ReceiptsByMonth()

		require.Len(t, result.Months, 2)
		assert.Equal(t, 2024, result.Months[0].Month.Year)
		assert.Equal(t, time.November, result.Months[0].Month.Month)
		assert.Equal(t, 2, result.Months[0].Count)
		assert.Equal(t, int64(5000), result.Months[0].Subtotal.Minor())
		assert.Equal(t, 2025, result.Months[1].Month.Year)
	})

	t.Run("grand total equals sum of month subtotals", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 1000, date(t, 1, 3, 2024), "online", "")
		income(t, l, "Ron", 2000, date(t, 1, 4, 2024), "online", "")
		income(t, l, "Maya", 4000, date(t, 2, 4, 2024), "cash", "")
		income(t, l, "Maya", 0, date(t, 3, 4, 2024), "cash", "")
		applied := income(t, l, "Ron", 999, date(t, 4, 4, 2024), ledger.ModeCredit, ledger.AutoAppliedNote)
		applied.WithOrderID("ORD-04042024-001")

		result := NewReportService(l).ReceiptsByMonth()

		var sum int64
		for _, m := range result.Months {
			sum += m.Subtotal.Minor()
		}
		assert.Equal(t, sum, result.GrandTotal.Minor())
		assert.Equal(t, int64(7000), result.GrandTotal.Minor())
	})

	t.Run("undated entries are omitted", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 1000, nil, "online", "")

		result := NewReportService(l).ReceiptsByMonth()
		assert.Empty(t, result.Months)
		assert.True(t, result.GrandTotal.IsZero())
	})
}

func TestProfit(t *testing.T) {
	t.Run("computes per-month and grand profit", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 500000, date(t, 5, 3, 2024), "online", "")
		expense(t, l, "Ron", 200000, date(t, 10, 3, 2024))
		income(t, l, "Maya", 100000, date(t, 2, 4, 2024), "cash", "")
		expense(t, l, "Maya", 150000, date(t, 3, 4, 2024))

		result := NewReportService(l).Profit("")

		require.Len(t, result.Months, 2)
		march := result.Months[0]
		assert.Equal(t, int64(500000), march.Income.Minor())
		assert.Equal(t, int64(200000), march.Expense.Minor())
		assert.Equal(t, int64(300000), march.Profit.Minor())

		april := result.Months[1]
		assert.Equal(t, int64(-50000), april.Profit.Minor())

		assert.Equal(t, int64(600000), result.TotalIncome.Minor())
		assert.Equal(t, int64(350000), result.TotalExpense.Minor())
		assert.Equal(t, int64(250000), result.NetProfit.Minor())
		assert.Equal(t, "41.67", result.NetMargin.StringFixed(2))
	})

	t.Run("filters by client name", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 500000, date(t, 5, 3, 2024), "online", "")
		income(t, l, "Maya", 100000, date(t, 6, 3, 2024), "cash", "")

		result := NewReportService(l).Profit("Ron")

		assert.Equal(t, "Ron", result.ClientName)
		assert.Equal(t, int64(500000), result.TotalIncome.Minor())
	})

	t.Run("excludes auto-applied credit from income", func(t *testing.T) {
		l := ledger.NewLedger()
		income(t, l, "Ron", 500000, date(t, 5, 3, 2024), "online", "")
		applied := income(t, l, "Ron", 250000, date(t, 6, 3, 2024), ledger.ModeCredit, ledger.AutoAppliedNote)
		applied.WithOrderID("ORD-06032024-001")

		result := NewReportService(l).Profit("")
		assert.Equal(t, int64(500000), result.TotalIncome.Minor())
	})

	t.Run("zero income yields zero margin", func(t *testing.T) {
		l := ledger.NewLedger()
		expense(t, l, "Ron", 1000, date(t, 5, 3, 2024))

		result := NewReportService(l).Profit("")
		assert.True(t, result.NetMargin.IsZero())
		assert.Equal(t, int64(-1000), result.NetProfit.Minor())
	})

	t.Run("empty ledger yields empty report", func(t *testing.T) {
		result := NewReportService(ledger.NewLedger()).Profit("")
		assert.Empty(t, result.Months)
		assert.True(t, result.NetProfit.IsZero())
	})
}
