package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/report"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// ReportService builds aggregated financial reports over the full ledger.
// All three reports exclude zero-amount rows (fully consumed credit) and
// auto-applied credit entries, which would double-count money that already
// appears as the payment funding the credit.
type ReportService struct {
	ledger *ledger.Ledger
}

// NewReportService creates a new ReportService over the given ledger
func NewReportService(l *ledger.Ledger) *ReportService {
	return &ReportService{ledger: l}
}

// reportable filters an entry into report scope
func reportable(t *ledger.Transaction) bool {
	return t.Amount.IsPositive() && !t.IsAutoAppliedCredit()
}

func monthOf(t *ledger.Transaction) report.MonthKey {
	return report.MonthKey{Year: t.Date.Year(), Month: t.Date.Month()}
}

func toLine(t *ledger.Transaction) report.EntryLine {
	return report.EntryLine{
		ClientName: t.ClientName,
		Amount:     t.Amount,
		Date:       t.Date,
		Mode:       t.Mode,
		Note:       t.Note,
	}
}

func sortedMonths(keys map[report.MonthKey]bool) []report.MonthKey {
	months := make([]report.MonthKey, 0, len(keys))
	for k := range keys {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

// ReceiptsByClient produces per-client receipt summaries with per-month
// subtotals, a pending-date bucket for entries without a parseable date,
// per-client totals and a grand total. Clients are ordered by first
// appearance in the ledger.
func (s *ReportService) ReceiptsByClient() report.ClientReceiptsReport {
	grandTotal := valueobject.Zero(valueobject.DefaultCurrency)
	byClient := make(map[string][]*ledger.Transaction)
	clientOrder := make([]string, 0)

	for _, tx := range s.ledger.Incomes() {
		if !reportable(tx) {
			continue
		}
		if _, seen := byClient[tx.ClientName]; !seen {
			clientOrder = append(clientOrder, tx.ClientName)
		}
		byClient[tx.ClientName] = append(byClient[tx.ClientName], tx)
	}

	clients := make([]report.ClientReceiptsSummary, 0, len(clientOrder))
	for _, name := range clientOrder {
		summary := report.ClientReceiptsSummary{
			ClientName:      name,
			PendingSubtotal: valueobject.Zero(valueobject.DefaultCurrency),
			Total:           valueobject.Zero(valueobject.DefaultCurrency),
		}

		byMonth := make(map[report.MonthKey][]*ledger.Transaction)
		monthKeys := make(map[report.MonthKey]bool)
		for _, tx := range byClient[name] {
			if !tx.HasDate() {
				summary.Pending = append(summary.Pending, toLine(tx))
				summary.PendingSubtotal = summary.PendingSubtotal.MustAdd(tx.Amount)
				continue
			}
			key := monthOf(tx)
			byMonth[key] = append(byMonth[key], tx)
			monthKeys[key] = true
		}

		for _, key := range sortedMonths(monthKeys) {
			group := report.ClientMonthGroup{
				Month:    key,
				Subtotal: valueobject.Zero(valueobject.DefaultCurrency),
			}
			for _, tx := range byMonth[key] {
				group.Entries = append(group.Entries, toLine(tx))
				group.Subtotal = group.Subtotal.MustAdd(tx.Amount)
			}
			summary.Months = append(summary.Months, group)
			summary.Total = summary.Total.MustAdd(group.Subtotal)
		}

		summary.Total = summary.Total.MustAdd(summary.PendingSubtotal)
		grandTotal = grandTotal.MustAdd(summary.Total)
		clients = append(clients, summary)
	}

	return report.ClientReceiptsReport{Clients: clients, GrandTotal: grandTotal}
}

// ReceiptsByMonth produces per-month receipt counts and subtotals across
// all clients, sorted chronologically. Entries without a parseable date
// cannot be grouped into a month and are omitted here; they appear in the
// per-client report's pending bucket.
func (s *ReportService) ReceiptsByMonth() report.MonthlyReport {
	byMonth := make(map[report.MonthKey][]*ledger.Transaction)
	monthKeys := make(map[report.MonthKey]bool)

	for _, tx := range s.ledger.Incomes() {
		if !reportable(tx) || !tx.HasDate() {
			continue
		}
		key := monthOf(tx)
		byMonth[key] = append(byMonth[key], tx)
		monthKeys[key] = true
	}

	grandTotal := valueobject.Zero(valueobject.DefaultCurrency)
	months := make([]report.MonthlySummary, 0, len(monthKeys))
	for _, key := range sortedMonths(monthKeys) {
		summary := report.MonthlySummary{
			Month:    key,
			Subtotal: valueobject.Zero(valueobject.DefaultCurrency),
		}
		for _, tx := range byMonth[key] {
			summary.Count++
			summary.Subtotal = summary.Subtotal.MustAdd(tx.Amount)
		}
		grandTotal = grandTotal.MustAdd(summary.Subtotal)
		months = append(months, summary)
	}

	return report.MonthlyReport{Months: months, GrandTotal: grandTotal}
}

// Profit produces the combined income-vs-expense monthly report. When
// clientName is non-empty only that client's entries are counted. Only
// dated entries participate.
func (s *ReportService) Profit(clientName string) report.ProfitReport {
	type bucket struct {
		income  valueobject.Money
		expense valueobject.Money
	}
	buckets := make(map[report.MonthKey]*bucket)
	monthKeys := make(map[report.MonthKey]bool)

	for _, tx := range s.ledger.Entries() {
		if !reportable(tx) || !tx.HasDate() {
			continue
		}
		if clientName != "" && tx.ClientName != clientName {
			continue
		}
		key := monthOf(tx)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				income:  valueobject.Zero(valueobject.DefaultCurrency),
				expense: valueobject.Zero(valueobject.DefaultCurrency),
			}
			buckets[key] = b
			monthKeys[key] = true
		}
		switch tx.Type {
		case ledger.TransactionTypeIncome:
			b.income = b.income.MustAdd(tx.Amount)
		case ledger.TransactionTypeExpense:
			b.expense = b.expense.MustAdd(tx.Amount)
		}
	}

	result := report.ProfitReport{
		ClientName:   clientName,
		TotalIncome:  valueobject.Zero(valueobject.DefaultCurrency),
		TotalExpense: valueobject.Zero(valueobject.DefaultCurrency),
	}
	for _, key := range sortedMonths(monthKeys) {
		b := buckets[key]
		result.Months = append(result.Months, report.MonthlyProfit{
			Month:   key,
			Income:  b.income,
			Expense: b.expense,
			Profit:  b.income.MustSubtract(b.expense),
		})
		result.TotalIncome = result.TotalIncome.MustAdd(b.income)
		result.TotalExpense = result.TotalExpense.MustAdd(b.expense)
	}
	result.NetProfit = result.TotalIncome.MustSubtract(result.TotalExpense)

	if result.TotalIncome.IsZero() {
		result.NetMargin = decimal.Zero
	} else {
		result.NetMargin = result.NetProfit.Decimal().
			Div(result.TotalIncome.Decimal()).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return result
}
