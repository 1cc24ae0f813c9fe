package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/api/metrics"
	"github.com/lexcase/practice-api/internal/core/ports"
)

type createHearingRequest struct {
	CaseID      *int64    `json:"case_id"      validate:"omitempty,gt=0"`
	Title       string    `json:"title"        validate:"required"`
	Court       string    `json:"court"        validate:"omitempty"`
	Room        string    `json:"room"         validate:"omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Duration    *int      `json:"duration"     validate:"omitempty,gt=0"`
	Notes       string    `json:"notes"        validate:"omitempty"`
	Status      string    `json:"status"       validate:"omitempty,oneof=scheduled completed postponed cancelled"`
}

// HearingHandler handles HTTP requests for hearing operations.
type HearingHandler struct {
	service ports.HearingService
}

func NewHearingHandler(service ports.HearingService) *HearingHandler {
	return &HearingHandler{service: service}
}

// List handles GET /api/hearings, ordered by scheduled time.
//
// @Summary      List hearings
// @Tags         hearings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Hearing
// @Failure      401  {object}  errorResponse
// @Router       /hearings [get]
func (h *HearingHandler) List(c echo.Context) error {
	hearings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hearings)
}

// Create handles POST /api/hearings.
//
// @Summary      Schedule a hearing
// @Tags         hearings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHearingRequest  true  "Hearing details"
// @Success      201   {object}  domain.Hearing
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /hearings [post]
func (h *HearingHandler) Create(c echo.Context) error {
	var req createHearingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateHearingInput{
		CaseID:      req.CaseID,
		Title:       req.Title,
		Court:       req.Court,
		Room:        req.Room,
		ScheduledAt: req.ScheduledAt,
		Duration:    req.Duration,
		Notes:       req.Notes,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	metrics.HearingsScheduledTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}
