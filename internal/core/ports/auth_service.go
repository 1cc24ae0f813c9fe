package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
	Phone    string
	Address  string
}

// AuthService implements registration and credential verification.
type AuthService interface {
	// Register creates an account and issues a session token for it.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies an email/password pair and issues a session token.
	// Unknown email and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
