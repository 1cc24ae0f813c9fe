package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// CaseFilter narrows List queries; zero values mean "no constraint".
type CaseFilter struct {
	Search       string
	Status       string
	CaseType     string
	AssignedToID *int64
	Offset       int
	Limit        int
}

// CaseRepository defines case persistence.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	FindByID(ctx context.Context, id int64) (*domain.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]domain.Case, int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Case, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
