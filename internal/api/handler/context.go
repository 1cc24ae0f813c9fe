package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/lexcase/practice-api/internal/api/middleware"
	"github.com/lexcase/practice-api/internal/core/domain"
)

// currentIdentity extracts the identity resolved by the Auth middleware.
// Its presence proves the middleware ran; a protected handler reached
// without it is a wiring bug surfaced as 401, never a silent pass.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(apimiddleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}
