package service

import (
	"context"
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

const dashboardListLimit = 5

// pendingInvoicesPlaceholder stands in for invoice aggregation, which is
// outside the scope of this service.
const pendingInvoicesPlaceholder = "$0"

// DashboardService aggregates counts and short lists for the landing screen.
type DashboardService struct {
	cases    ports.CaseRepository
	clients  ports.ClientRepository
	hearings ports.HearingRepository
}

func NewDashboardService(cases ports.CaseRepository, clients ports.ClientRepository, hearings ports.HearingRepository) *DashboardService {
	return &DashboardService{cases: cases, clients: clients, hearings: hearings}
}

func (s *DashboardService) Metrics(ctx context.Context) (*ports.DashboardMetrics, error) {
	activeCases, err := s.cases.CountByStatus(ctx, domain.CaseStatusActive)
	if err != nil {
		return nil, err
	}
	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.hearings.CountUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &ports.DashboardMetrics{
		ActiveCases:      activeCases,
		UpcomingHearings: upcoming,
		PendingInvoices:  pendingInvoicesPlaceholder,
		TotalClients:     totalClients,
	}, nil
}

func (s *DashboardService) RecentCases(ctx context.Context) ([]domain.Case, error) {
	return s.cases.ListRecent(ctx, dashboardListLimit)
}

func (s *DashboardService) UpcomingHearings(ctx context.Context) ([]domain.Hearing, error) {
	return s.hearings.ListUpcoming(ctx, time.Now().UTC(), dashboardListLimit)
}
