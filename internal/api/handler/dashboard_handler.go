package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/core/ports"
)

// DashboardHandler serves the aggregated landing-screen views.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Metrics handles GET /api/dashboard/metrics.
//
// @Summary      Dashboard summary metrics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardMetrics
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	m, err := h.service.Metrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// RecentCases handles GET /api/dashboard/recent-cases.
//
// @Summary      Most recently opened cases
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Case
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/recent-cases [get]
func (h *DashboardHandler) RecentCases(c echo.Context) error {
	cases, err := h.service.RecentCases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// UpcomingHearings handles GET /api/dashboard/upcoming-hearings.
//
// @Summary      Next scheduled hearings
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Hearing
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/upcoming-hearings [get]
func (h *DashboardHandler) UpcomingHearings(c echo.Context) error {
	hearings, err := h.service.UpcomingHearings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hearings)
}
