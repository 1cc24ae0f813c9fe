package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/api/metrics"
	"github.com/lexcase/practice-api/internal/core/domain"
)

// RBAC enforces role-based access control on the identity resolved by Auth.
// An empty role list admits any authenticated identity.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[identity.Role]; !ok {
					metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
				}
			}
			return next(c)
		}
	}
}
