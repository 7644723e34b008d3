package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// MonthKey identifies a calendar month for grouping and sorting
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Before reports whether k is chronologically earlier than other
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Label returns the display form, e.g. "April 2024"
func (k MonthKey) Label() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// EntryLine is a single ledger entry as it appears in a report
type EntryLine struct {
	ClientName string            `json:"client_name"`
	Amount     valueobject.Money `json:"amount"`
	Date       *time.Time        `json:"date,omitempty"` // nil = pending date
	Mode       string            `json:"mode"`
	Note       string            `json:"note,omitempty"`
}

// ClientMonthGroup holds one client's receipts for one month
type ClientMonthGroup struct {
	Month    MonthKey          `json:"month"`
	Entries  []EntryLine       `json:"entries"`
	Subtotal valueobject.Money `json:"subtotal"`
}

// ClientReceiptsSummary is one client's section of the receipts report.
// Entries without a parseable date are reported separately as pending.
type ClientReceiptsSummary struct {
	ClientName      string             `json:"client_name"`
	Months          []ClientMonthGroup `json:"months"`
	Pending         []EntryLine        `json:"pending,omitempty"`
	PendingSubtotal valueobject.Money  `json:"pending_subtotal"`
	Total           valueobject.Money  `json:"total"`
}

// ClientReceiptsReport groups receipts by client with per-month subtotals
// and a grand total
type ClientReceiptsReport struct {
	Clients    []ClientReceiptsSummary `json:"clients"`
	GrandTotal valueobject.Money       `json:"grand_total"`
}

// MonthlySummary is one month's receipts across all clients
type MonthlySummary struct {
	Month    MonthKey          `json:"month"`
	Count    int               `json:"count"`
	Subtotal valueobject.Money `json:"subtotal"`
}

// MonthlyReport groups receipts by month across all clients, sorted
// chronologically
type MonthlyReport struct {
	Months     []MonthlySummary  `json:"months"`
	GrandTotal valueobject.Money `json:"grand_total"`
}

// MonthlyProfit is one month's income, expense and profit
type MonthlyProfit struct {
	Month   MonthKey          `json:"month"`
	Income  valueobject.Money `json:"income"`
	Expense valueobject.Money `json:"expense"`
	Profit  valueobject.Money `json:"profit"` // Income - Expense
}

// ProfitReport combines income and expense per month with grand totals.
// ClientName is empty when the report spans all clients.
type ProfitReport struct {
	ClientName   string            `json:"client_name,omitempty"`
	Months       []MonthlyProfit   `json:"months"`
	TotalIncome  valueobject.Money `json:"total_income"`
	TotalExpense valueobject.Money `json:"total_expense"`
	NetProfit    valueobject.Money `json:"net_profit"`
	NetMargin    decimal.Decimal   `json:"net_margin"` // NetProfit / TotalIncome * 100, zero when no income
}
