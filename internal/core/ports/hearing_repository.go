package ports

import (
	"context"
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// HearingRepository defines hearing persistence. Listings are ordered by
// scheduled time ascending.
type HearingRepository interface {
	Create(ctx context.Context, h *domain.Hearing) (*domain.Hearing, error)
	List(ctx context.Context) ([]domain.Hearing, error)
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]domain.Hearing, error)
	CountUpcoming(ctx context.Context, after time.Time) (int64, error)
}
