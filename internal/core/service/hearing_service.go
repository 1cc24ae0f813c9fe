package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

// HearingService implements hearing scheduling use-cases.
type HearingService struct {
	repo   ports.HearingRepository
	logger zerolog.Logger
}

func NewHearingService(repo ports.HearingRepository, logger zerolog.Logger) *HearingService {
	return &HearingService{repo: repo, logger: logger}
}

func (s *HearingService) Create(ctx context.Context, input ports.CreateHearingInput) (*domain.Hearing, error) {
	h := &domain.Hearing{
		CaseID:      input.CaseID,
		Title:       input.Title,
		Court:       optional(input.Court),
		Room:        optional(input.Room),
		ScheduledAt: input.ScheduledAt,
		Duration:    input.Duration,
		Notes:       optional(input.Notes),
		Status:      defaultString(input.Status, domain.HearingStatusScheduled),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("hearing_id", created.ID).Time("scheduled_at", created.ScheduledAt).Msg("hearing scheduled")
	return created, nil
}

func (s *HearingService) List(ctx context.Context) ([]domain.Hearing, error) {
	return s.repo.List(ctx)
}
