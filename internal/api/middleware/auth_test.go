package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/service"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func authFixture(t *testing.T) (*service.TokenService, *stubUserRepo) {
	t.Helper()
	tokens := service.NewTokenService("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Username: "ana", Email: "ana@example.com", FullName: "Ana Torres", Role: domain.RoleAdvocate, IsActive: true},
	}}
	return tokens, repo
}

func invokeAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, repo := authFixture(t)
	token, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	c, err := invokeAuth(t, Auth(tokens, repo), "Bearer "+token)
	if err != nil {
		t.Fatalf("auth middleware error = %v", err)
	}

	identity, ok := c.Get(IdentityKey).(domain.Identity)
	if !ok {
		t.Fatal("identity not stored in context")
	}
	if identity.ID != 1 || identity.Role != domain.RoleAdvocate {
		t.Fatalf("identity = %+v, want id 1 role advocate", identity)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, repo := authFixture(t)

	_, err := invokeAuth(t, Auth(tokens, repo), "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_BadScheme(t *testing.T) {
	tokens, repo := authFixture(t)
	token, _ := tokens.Issue(1)

	_, err := invokeAuth(t, Auth(tokens, repo), "Basic "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens, repo := authFixture(t)

	_, err := invokeAuth(t, Auth(tokens, repo), "Bearer not-a-token")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_TamperedToken(t *testing.T) {
	_, repo := authFixture(t)
	tokens := service.NewTokenService("test-secret", time.Hour)
	other := service.NewTokenService("other-secret", time.Hour)
	token, _ := other.Issue(1)

	_, err := invokeAuth(t, Auth(tokens, repo), "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_UserDeletedAfterIssue(t *testing.T) {
	tokens, repo := authFixture(t)
	token, _ := tokens.Issue(1)
	delete(repo.users, 1)

	// A valid token for a vanished user must look like any other bad token.
	_, err := invokeAuth(t, Auth(tokens, repo), "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error = %v, want *echo.HTTPError", err)
	}
	if he.Code != want {
		t.Fatalf("status = %d, want %d", he.Code, want)
	}
}
