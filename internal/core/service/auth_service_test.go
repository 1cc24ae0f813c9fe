package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	created := *user
	created.ID = r.nextID
	r.nextID++
	r.byEmail[created.Email] = &created
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) add(t *testing.T, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u, err := r.Create(context.Background(), &domain.User{
		Username:     email,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return u
}

func TestAuthService_LoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	seeded := repo.add(t, "ana@example.com", "secret123", domain.RoleAdvocate)

	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	token, user, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
	if user.ID != seeded.ID {
		t.Fatalf("Login() user id = %d, want %d", user.ID, seeded.ID)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "ana@example.com", "secret123", domain.RoleAdvocate)

	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	if _, _, err := svc.Login(context.Background(), "ana@example.com", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	// Unknown email and wrong password must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginEmptyInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	seeded := repo.add(t, "ana@example.com", "secret123", domain.RoleStaff)
	seeded.IsActive = false

	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	// Deactivation does not block login; the flag is informational.
	if _, _, err := svc.Login(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Login() error = %v, want nil", err)
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService(testSecret, time.Hour)
	svc := NewAuthService(repo, tokens)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
		FullName: "Ana Torres",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("Register() role = %q, want default %q", user.Role, domain.RoleClient)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("Register() stored the plaintext password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify(registration token) error = %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token user id = %d, want %d", userID, user.ID)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "ana@example.com", "secret123", domain.RoleClient)

	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ana2",
		Email:    "ana@example.com",
		Password: "secret123",
		FullName: "Ana Torres",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("Register() error = %v, want ErrUserExists", err)
	}
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, NewTokenService(testSecret, time.Hour))

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
		FullName: "Ana Torres",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("Register() error = %v, want ErrInvalidRole", err)
	}
}
