package service

import (
	"context"
	"fmt"

	"github.com/kidulajumba254/invoice-management-system/internal/api/dto"
	"github.com/kidulajumba254/invoice-management-system/internal/cache"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/samber/lo"
)

// DashboardService derives the aggregate figures the dashboard renders
type DashboardService interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error)
	GetRecentInvoices(ctx context.Context, limit int) ([]*dto.InvoiceResponse, error)
	GetDashboard(ctx context.Context, limit int) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

// GetStatistics computes the statistics snapshot. Results are cached keyed
// by the repository version and the current date, so the cache invalidates
// itself whenever the collection changes or the day rolls over.
func (s *dashboardService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	today := types.Today()
	key := fmt.Sprintf("%s%d:%s", cache.PrefixStatistics, s.InvoiceRepo.Version(ctx), today)

	if cached, ok := s.Cache.Get(ctx, key); ok {
		if stats, ok := cached.(invoice.Statistics); ok {
			return dto.NewStatisticsResponse(stats), nil
		}
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := invoice.ComputeStatistics(invoices, today)
	s.Cache.Set(ctx, key, stats, cache.DefaultExpiration)

	return dto.NewStatisticsResponse(stats), nil
}

func (s *dashboardService) GetRecentInvoices(ctx context.Context, limit int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = s.Config.Dashboard.RecentInvoicesLimit
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recent := invoice.Recent(invoices, limit)
	return lo.Map(recent, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return dto.NewInvoiceResponse(inv)
	}), nil
}

func (s *dashboardService) GetDashboard(ctx context.Context, limit int) (*dto.DashboardResponse, error) {
	stats, err := s.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.GetRecentInvoices(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Statistics:     stats,
		RecentInvoices: recent,
	}, nil
}
