package ports

import (
	"context"
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// CreateHearingInput carries all data needed to schedule a hearing.
type CreateHearingInput struct {
	CaseID      *int64
	Title       string
	Court       string
	Room        string
	ScheduledAt time.Time
	Duration    *int
	Notes       string
	Status      string
}

// HearingService defines use-case operations for hearings.
type HearingService interface {
	Create(ctx context.Context, input CreateHearingInput) (*domain.Hearing, error)
	List(ctx context.Context) ([]domain.Hearing, error)
}
