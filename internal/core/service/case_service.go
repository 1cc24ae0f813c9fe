package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

const (
	defaultCaseLimit = 10
	maxListLimit     = 100
)

// CaseService implements case use-cases. Creation supports Idempotency-Key
// replay backed by the idempotency store.
type CaseService struct {
	repo   ports.CaseRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, idem: idem, logger: logger}
}

// Create opens a new case. When the input carries an idempotency key that
// was already seen, the originally created case is returned unchanged.
func (s *CaseService) Create(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		if id, ok, err := s.idem.Lookup(ctx, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, proceeding without replay")
		} else if ok {
			existing, err := s.repo.FindByID(ctx, id)
			if err == nil {
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Int64("case_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	now := time.Now().UTC()
	c := &domain.Case{
		CaseNumber:     input.CaseNumber,
		Title:          input.Title,
		Description:    optional(input.Description),
		CaseType:       input.CaseType,
		Status:         defaultString(input.Status, domain.CaseStatusActive),
		Priority:       defaultString(input.Priority, "medium"),
		ClientID:       input.ClientID,
		AssignedToID:   input.AssignedToID,
		CreatedByID:    &input.CreatedByID,
		NextHearing:    input.NextHearing,
		EstimatedValue: input.EstimatedValue,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Int64("case_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Str("case_number", created.CaseNumber).Int64("case_id", created.ID).Msg("case created")
	return created, nil
}

func (s *CaseService) Get(ctx context.Context, id int64) (*domain.Case, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of cases matching the filters.
func (s *CaseService) List(ctx context.Context, input ports.ListCasesInput) (*ports.ListCasesResult, error) {
	page, limit := normalizePage(input.Page, input.Limit, defaultCaseLimit)

	cases, total, err := s.repo.List(ctx, ports.CaseFilter{
		Search:       input.Search,
		Status:       input.Status,
		CaseType:     input.CaseType,
		AssignedToID: input.AssignedToID,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListCasesResult{
		Cases:      cases,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func normalizePage(page, limit, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallback
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
