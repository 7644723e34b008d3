package display

import (
	"fmt"
	"io"

	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/report"
	"github.com/smedge/backend/internal/domain/trade"
)

// RenderClientReceipts writes the per-client receipts report
func RenderClientReceipts(w io.Writer, rep report.ClientReceiptsReport) {
	fmt.Fprintln(w, "=== Receipts by Client ===")
	for _, client := range rep.Clients {
		fmt.Fprintf(w, "\n%s\n", client.ClientName)
		for _, month := range client.Months {
			fmt.Fprintf(w, "  %s\n", month.Month.Label())
			for _, entry := range month.Entries {
				fmt.Fprintf(w, "    %s  %s  %s\n", entry.Date.Format("02-01-2006"), FormatMoney(entry.Amount), entry.Mode)
			}
			fmt.Fprintf(w, "  Subtotal: %s\n", FormatMoney(month.Subtotal))
		}
		for _, entry := range client.Pending {
			fmt.Fprintf(w, "  pending     %s  %s\n", FormatMoney(entry.Amount), entry.Mode)
		}
		if len(client.Pending) > 0 {
			fmt.Fprintf(w, "  Pending subtotal: %s\n", FormatMoney(client.PendingSubtotal))
		}
		fmt.Fprintf(w, "  Total: %s\n", FormatMoney(client.Total))
	}
	fmt.Fprintf(w, "\nGrand total: %s\n", FormatMoney(rep.GrandTotal))
}

// RenderMonthly writes the month-by-month receipts report
func RenderMonthly(w io.Writer, rep report.MonthlyReport) {
	fmt.Fprintln(w, "=== Receipts by Month ===")
	for _, month := range rep.Months {
		fmt.Fprintf(w, "%-16s %3d receipts  %s\n", month.Month.Label(), month.Count, FormatMoney(month.Subtotal))
	}
	fmt.Fprintf(w, "Grand total: %s\n", FormatMoney(rep.GrandTotal))
}

// RenderProfit writes the income/expense/profit report
func RenderProfit(w io.Writer, rep report.ProfitReport) {
	if rep.ClientName != "" {
		fmt.Fprintf(w, "=== Profit: %s ===\n", rep.ClientName)
	} else {
		fmt.Fprintln(w, "=== Profit ===")
	}
	for _, month := range rep.Months {
		fmt.Fprintf(w, "%-16s income %s  expense %s  profit %s\n",
			month.Month.Label(), FormatMoney(month.Income), FormatMoney(month.Expense), FormatMoney(month.Profit))
	}
	fmt.Fprintf(w, "Total income:  %s\n", FormatMoney(rep.TotalIncome))
	fmt.Fprintf(w, "Total expense: %s\n", FormatMoney(rep.TotalExpense))
	fmt.Fprintf(w, "Net profit:    %s (margin %s%%)\n", FormatMoney(rep.NetProfit), rep.NetMargin.StringFixed(1))
}

// RenderOrder writes one order with its status flags
func RenderOrder(w io.Writer, o tradeapp.OrderResponse) {
	fmt.Fprintf(w, "%s  %s  %s\n", o.OrderNumber, o.OrderDate.Format("02-01-2006"), o.ClientName)
	for _, item := range o.Items {
		fmt.Fprintf(w, "  %-24s x%-5d @ %s\n", item.Description, item.Quantity, FormatMoney(item.Rate))
	}
	if !o.Discount.IsZero() {
		fmt.Fprintf(w, "  Discount: %s\n", FormatMoney(o.Discount))
	}
	fmt.Fprintf(w, "  Total: %s  Received: %s  Due: %s\n",
		FormatMoney(o.TotalAfterDiscount), FormatMoney(o.TotalReceived), FormatMoney(o.BalanceDue))
	if o.FullyPaid {
		fmt.Fprintln(w, "  Fully paid")
	}
	for _, flag := range trade.AllStatusFlags {
		fmt.Fprintf(w, "  %s\n", FlagLine(flag.String(), o.Flags[flag.String()]))
	}
}
