package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// ClientFilter narrows List queries; zero values mean "no constraint".
type ClientFilter struct {
	Search     string
	ClientType string
	Status     string
	Offset     int
	Limit      int
}

// ClientRepository defines client persistence.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, int64, error)
	Count(ctx context.Context) (int64, error)
}
