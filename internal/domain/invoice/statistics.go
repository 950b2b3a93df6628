package invoice

import (
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/shopspring/decimal"
)

// Statistics is a read-only aggregate snapshot over an invoice collection
type Statistics struct {
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalPending  decimal.Decimal `json:"total_pending"`
	TotalOverdue  decimal.Decimal `json:"total_overdue"`
	TotalInvoices int             `json:"total_invoices"`
}

// ComputeStatistics derives aggregate totals from the invoice collection.
// Pure and deterministic: the same inputs always produce identical output,
// and an empty collection yields all-zero statistics. Overdue means pending
// with a due date strictly before today, compared as dates rather than as
// strings.
func ComputeStatistics(invoices []*Invoice, today types.Date) Statistics {
	stats := Statistics{
		TotalPaid:     decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalOverdue:  decimal.Zero,
		TotalInvoices: len(invoices),
	}

	for _, inv := range invoices {
		switch inv.Status {
		case types.InvoiceStatusPaid:
			stats.TotalPaid = stats.TotalPaid.Add(inv.Total)
		case types.InvoiceStatusPending:
			stats.TotalPending = stats.TotalPending.Add(inv.Total)
			if inv.DueDate.Before(today) {
				stats.TotalOverdue = stats.TotalOverdue.Add(inv.Total)
			}
		}
	}

	return stats
}
