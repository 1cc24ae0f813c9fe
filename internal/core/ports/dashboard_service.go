package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// DashboardMetrics is the summary card data on the dashboard.
type DashboardMetrics struct {
	ActiveCases      int64  `json:"activeCases"`
	UpcomingHearings int64  `json:"upcomingHearings"`
	PendingInvoices  string `json:"pendingInvoices"`
	TotalClients     int64  `json:"totalClients"`
}

// DashboardService aggregates read-only views for the landing screen.
type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	RecentCases(ctx context.Context) ([]domain.Case, error)
	UpcomingHearings(ctx context.Context) ([]domain.Hearing, error)
}
