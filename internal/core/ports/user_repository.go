package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// UserRepository defines user persistence. Reads return ErrUserNotFound
// when no row matches; Create returns ErrUserExists on a duplicate email
// or username.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
