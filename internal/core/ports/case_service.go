package ports

import (
	"context"
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// CreateCaseInput carries all data needed to open a new case.
type CreateCaseInput struct {
	CaseNumber     string
	Title          string
	Description    string
	CaseType       string
	Status         string
	Priority       string
	ClientID       *int64
	AssignedToID   *int64
	CreatedByID    int64
	NextHearing    *time.Time
	EstimatedValue *float64
	// IdempotencyKey, when non-empty, makes retried submissions replay the
	// originally created case instead of opening a duplicate.
	IdempotencyKey string
}

// ListCasesInput carries the filters and pagination for the case list.
type ListCasesInput struct {
	Search       string
	Status       string
	CaseType     string
	AssignedToID *int64
	Page         int
	Limit        int
}

// ListCasesResult is the paginated case list envelope.
type ListCasesResult struct {
	Cases      []domain.Case
	Total      int64
	Page       int
	TotalPages int
}

// CaseService defines use-case operations for cases.
type CaseService interface {
	Create(ctx context.Context, input CreateCaseInput) (*domain.Case, error)
	Get(ctx context.Context, id int64) (*domain.Case, error)
	List(ctx context.Context, input ListCasesInput) (*ListCasesResult, error)
}
