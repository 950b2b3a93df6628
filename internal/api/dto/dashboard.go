package dto

import (
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
)

// StatisticsResponse is the invoice statistics snapshot plus display strings
type StatisticsResponse struct {
	invoice.Statistics
	DisplayTotalPaid    string `json:"display_total_paid"`
	DisplayTotalPending string `json:"display_total_pending"`
	DisplayTotalOverdue string `json:"display_total_overdue"`
}

// NewStatisticsResponse creates a statistics response
func NewStatisticsResponse(stats invoice.Statistics) *StatisticsResponse {
	return &StatisticsResponse{
		Statistics:          stats,
		DisplayTotalPaid:    types.FormatAmount(stats.TotalPaid, types.DefaultCurrency),
		DisplayTotalPending: types.FormatAmount(stats.TotalPending, types.DefaultCurrency),
		DisplayTotalOverdue: types.FormatAmount(stats.TotalOverdue, types.DefaultCurrency),
	}
}

// DashboardResponse is everything the dashboard renders in one payload
type DashboardResponse struct {
	Statistics     *StatisticsResponse `json:"statistics"`
	RecentInvoices []*InvoiceResponse  `json:"recent_invoices"`
}
