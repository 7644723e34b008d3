package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smedge/backend/internal/domain/report"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

func TestRenderClientReceipts(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rep := report.ClientReceiptsReport{
		Clients: []report.ClientReceiptsSummary{
			{
				ClientName: "Ron Traders",
				Months: []report.ClientMonthGroup{
					{
						Month: report.MonthKey{Year: 2024, Month: time.March},
						Entries: []report.EntryLine{
							{ClientName: "Ron Traders", Amount: valueobject.NewMoneyINR(200000), Date: &date, Mode: "upi"},
						},
						Subtotal: valueobject.NewMoneyINR(200000),
					},
				},
				Pending: []report.EntryLine{
					{ClientName: "Ron Traders", Amount: valueobject.NewMoneyINR(50000), Mode: "cash"},
				},
				PendingSubtotal: valueobject.NewMoneyINR(50000),
				Total:           valueobject.NewMoneyINR(250000),
			},
		},
		GrandTotal: valueobject.NewMoneyINR(250000),
	}

	var buf bytes.Buffer
	RenderClientReceipts(&buf, rep)
	out := buf.String()

	assert.Contains(t, out, "Ron Traders")
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "15-03-2024")
	assert.Contains(t, out, "Rs. 2,000.00")
	assert.Contains(t, out, "Pending subtotal: Rs. 500.00")
	assert.Contains(t, out, "Grand total: Rs. 2,500.00")
}

func TestRenderMonthly(t *testing.T) {
	rep := report.MonthlyReport{
		Months: []report.MonthlySummary{
			{Month: report.MonthKey{Year: 2024, Month: time.March}, Count: 2, Subtotal: valueobject.NewMoneyINR(250000)},
			{Month: report.MonthKey{Year: 2024, Month: time.April}, Count: 1, Subtotal: valueobject.NewMoneyINR(100000)},
		},
		GrandTotal: valueobject.NewMoneyINR(350000),
	}

	var buf bytes.Buffer
	RenderMonthly(&buf, rep)
	out := buf.String()

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "April 2024")
	assert.Contains(t, out, "Grand total: Rs. 3,500.00")
}
