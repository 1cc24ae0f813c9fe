package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, mw echo.MiddlewareFunc, identity *domain.Identity) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return handler(c)
}

func TestRBAC_AdminGate(t *testing.T) {
	adminOnly := RBAC(domain.RoleAdmin)

	tests := []struct {
		role     domain.Role
		wantCode int
	}{
		{domain.RoleAdmin, 0},
		{domain.RoleAdvocate, http.StatusForbidden},
		{domain.RoleStaff, http.StatusForbidden},
		{domain.RoleClient, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			err := invokeRBAC(t, adminOnly, &domain.Identity{ID: 1, Role: tt.role})
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("rbac error = %v, want nil", err)
				}
				return
			}
			assertHTTPStatus(t, err, tt.wantCode)
		})
	}
}

func TestRBAC_EmptyRoleSetAdmitsAnyAuthenticated(t *testing.T) {
	anyAuthenticated := RBAC()

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleAdvocate, domain.RoleStaff, domain.RoleClient} {
		if err := invokeRBAC(t, anyAuthenticated, &domain.Identity{ID: 1, Role: role}); err != nil {
			t.Fatalf("rbac(%s) error = %v, want nil", role, err)
		}
	}
}

func TestRBAC_MissingIdentity(t *testing.T) {
	err := invokeRBAC(t, RBAC(domain.RoleAdmin), nil)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestRBAC_StaffGate(t *testing.T) {
	staffOnly := RBAC(domain.RoleAdmin, domain.RoleAdvocate, domain.RoleStaff)

	if err := invokeRBAC(t, staffOnly, &domain.Identity{ID: 1, Role: domain.RoleStaff}); err != nil {
		t.Fatalf("rbac(staff) error = %v, want nil", err)
	}
	err := invokeRBAC(t, staffOnly, &domain.Identity{ID: 2, Role: domain.RoleClient})
	assertHTTPStatus(t, err, http.StatusForbidden)
}
