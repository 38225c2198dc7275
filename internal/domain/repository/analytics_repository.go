package repository

import (
	"context"

	"github.com/google/uuid"
)

// DashboardCounts aggregates record counts for the dashboard summary
type DashboardCounts struct {
	Clients        int64
	Projects       int64
	OpenQuotations int64
	UnpaidInvoices int64
	NewMessages    int64
}

// RevenueTotals aggregates invoice money amounts for the dashboard summary
type RevenueTotals struct {
	TotalInvoiced  float64
	TotalCollected float64
	Outstanding    float64
}

// AnalyticsRepository defines the interface for dashboard aggregation queries
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context, userID uuid.UUID) (*DashboardCounts, error)
	GetRevenueTotals(ctx context.Context, userID uuid.UUID) (*RevenueTotals, error)
}
