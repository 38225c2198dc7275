package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
)

// DashboardService aggregates summary data for the dashboard screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardSummary is the combined dashboard payload
type DashboardSummary struct {
	Clients        int64   `json:"clients"`
	Projects       int64   `json:"projects"`
	OpenQuotations int64   `json:"open_quotations"`
	UnpaidInvoices int64   `json:"unpaid_invoices"`
	NewMessages    int64   `json:"new_messages"`
	TotalInvoiced  float64 `json:"total_invoiced"`
	TotalCollected float64 `json:"total_collected"`
	Outstanding    float64 `json:"outstanding"`
}

// GetSummary returns dashboard counts and revenue totals for a user. A
// super-admin passes uuid.Nil and sees system-wide numbers.
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID, isSuperAdmin bool) (*DashboardSummary, error) {
	scope := userID
	if isSuperAdmin {
		scope = uuid.Nil
	}

	counts, err := s.analyticsRepo.GetDashboardCounts(ctx, scope)
	if err != nil {
		return nil, err
	}

	revenue, err := s.analyticsRepo.GetRevenueTotals(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Clients:        counts.Clients,
		Projects:       counts.Projects,
		OpenQuotations: counts.OpenQuotations,
		UnpaidInvoices: counts.UnpaidInvoices,
		NewMessages:    counts.NewMessages,
		TotalInvoiced:  revenue.TotalInvoiced,
		TotalCollected: revenue.TotalCollected,
		Outstanding:    revenue.Outstanding,
	}, nil
}
