package invoice

import (
	"testing"

	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func statInvoice(number string, status types.InvoiceStatus, total int64, due string) *Invoice {
	return &Invoice{
		ID:            "id-" + number,
		InvoiceNumber: number,
		Status:        status,
		Total:         decimal.NewFromInt(total),
		DueDate:       types.MustParseDate(due),
	}
}

func TestComputeStatistics(t *testing.T) {
	today := types.MustParseDate("2025-05-15")

	invoices := []*Invoice{
		statInvoice("INV-001", types.InvoiceStatusPaid, 2000, "2025-05-01"),
		statInvoice("INV-002", types.InvoiceStatusPending, 1000, "2025-05-10"),
		statInvoice("INV-003", types.InvoiceStatusPending, 350, "2025-05-20"),
		statInvoice("INV-004", types.InvoiceStatusDraft, 3000, "2025-03-31"),
		statInvoice("INV-005", types.InvoiceStatusPaid, 3000, "2025-03-15"),
	}

	stats := ComputeStatistics(invoices, today)

	assert.True(t, stats.TotalPaid.Equal(decimal.NewFromInt(5000)))
	assert.True(t, stats.TotalPending.Equal(decimal.NewFromInt(1350)))
	// only INV-002 is pending with a due date strictly before today
	assert.True(t, stats.TotalOverdue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, len(invoices), stats.TotalInvoices)
}

func TestComputeStatistics_EmptyCollection(t *testing.T) {
	stats := ComputeStatistics(nil, types.MustParseDate("2025-01-01"))

	assert.True(t, stats.TotalPaid.IsZero())
	assert.True(t, stats.TotalPending.IsZero())
	assert.True(t, stats.TotalOverdue.IsZero())
	assert.Zero(t, stats.TotalInvoices)
}

func TestComputeStatistics_NonPendingNeverOverdue(t *testing.T) {
	today := types.MustParseDate("2030-01-01")

	// everything is long past due, but nothing is pending
	invoices := []*Invoice{
		statInvoice("INV-001", types.InvoiceStatusPaid, 2000, "2025-05-01"),
		statInvoice("INV-002", types.InvoiceStatusDraft, 3000, "2025-03-31"),
	}

	stats := ComputeStatistics(invoices, today)
	assert.True(t, stats.TotalOverdue.IsZero())
}

func TestComputeStatistics_DueTodayIsNotOverdue(t *testing.T) {
	today := types.MustParseDate("2025-05-10")
	invoices := []*Invoice{
		statInvoice("INV-001", types.InvoiceStatusPending, 1000, "2025-05-10"),
	}

	stats := ComputeStatistics(invoices, today)
	assert.True(t, stats.TotalOverdue.IsZero())
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	today := types.MustParseDate("2025-05-15")
	invoices := []*Invoice{
		statInvoice("INV-001", types.InvoiceStatusPaid, 2000, "2025-05-01"),
		statInvoice("INV-002", types.InvoiceStatusPending, 1000, "2025-05-10"),
	}

	first := ComputeStatistics(invoices, today)
	second := ComputeStatistics(invoices, today)

	assert.Equal(t, first, second)
}
