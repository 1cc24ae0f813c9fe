package service

import (
	"context"
	"testing"
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

type stubClientRepo struct {
	count int64
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	return c, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, _ int64) (*domain.Client, error) {
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context, _ ports.ClientFilter) ([]domain.Client, int64, error) {
	return nil, 0, nil
}

func (r *stubClientRepo) Count(_ context.Context) (int64, error) {
	return r.count, nil
}

type stubHearingRepo struct {
	upcoming int64
}

func (r *stubHearingRepo) Create(_ context.Context, h *domain.Hearing) (*domain.Hearing, error) {
	return h, nil
}

func (r *stubHearingRepo) List(_ context.Context) ([]domain.Hearing, error) {
	return nil, nil
}

func (r *stubHearingRepo) ListUpcoming(_ context.Context, _ time.Time, limit int) ([]domain.Hearing, error) {
	n := int(r.upcoming)
	if n > limit {
		n = limit
	}
	return make([]domain.Hearing, n), nil
}

func (r *stubHearingRepo) CountUpcoming(_ context.Context, _ time.Time) (int64, error) {
	return r.upcoming, nil
}

type countingCaseRepo struct {
	stubCaseRepo
	active int64
	recent []domain.Case
}

func (r *countingCaseRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	if status == domain.CaseStatusActive {
		return r.active, nil
	}
	return 0, nil
}

func (r *countingCaseRepo) ListRecent(_ context.Context, limit int) ([]domain.Case, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func TestDashboardService_Metrics(t *testing.T) {
	cases := &countingCaseRepo{active: 12}
	clients := &stubClientRepo{count: 34}
	hearings := &stubHearingRepo{upcoming: 5}

	svc := NewDashboardService(cases, clients, hearings)

	m, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.ActiveCases != 12 || m.TotalClients != 34 || m.UpcomingHearings != 5 {
		t.Fatalf("metrics = %+v, want 12 active / 34 clients / 5 hearings", m)
	}
	if m.PendingInvoices != pendingInvoicesPlaceholder {
		t.Fatalf("pending invoices = %q, want placeholder", m.PendingInvoices)
	}
}

func TestDashboardService_RecentCasesCapped(t *testing.T) {
	cases := &countingCaseRepo{recent: make([]domain.Case, 9)}
	svc := NewDashboardService(cases, &stubClientRepo{}, &stubHearingRepo{})

	recent, err := svc.RecentCases(context.Background())
	if err != nil {
		t.Fatalf("RecentCases() error = %v", err)
	}
	if len(recent) != dashboardListLimit {
		t.Fatalf("len(recent) = %d, want %d", len(recent), dashboardListLimit)
	}
}

func TestDashboardService_UpcomingHearingsCapped(t *testing.T) {
	hearings := &stubHearingRepo{upcoming: 20}
	svc := NewDashboardService(&countingCaseRepo{}, &stubClientRepo{}, hearings)

	upcoming, err := svc.UpcomingHearings(context.Background())
	if err != nil {
		t.Fatalf("UpcomingHearings() error = %v", err)
	}
	if len(upcoming) != dashboardListLimit {
		t.Fatalf("len(upcoming) = %d, want %d", len(upcoming), dashboardListLimit)
	}
}
