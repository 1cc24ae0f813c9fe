package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/api/metrics"
	"github.com/lexcase/practice-api/internal/core/ports"
)

// CaseHandler handles HTTP requests for case operations.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// List handles GET /api/cases with filters and pagination.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Match against title or case number"
// @Param        status       query     string  false  "Case status"
// @Param        caseType     query     string  false  "Case type"
// @Param        assignedTo   query     int     false  "Assigned user id"
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 10)"
// @Success      200          {object}  listCasesResponse
// @Failure      401          {object}  errorResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	input := ports.ListCasesInput{
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		CaseType: c.QueryParam("caseType"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	if v := c.QueryParam("assignedTo"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "assignedTo must be an integer")
		}
		input.AssignedToID = &id
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCasesResponse{
		Cases: result.Cases,
		paginationResponse: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /api/cases. Retried submissions carrying the same
// Idempotency-Key replay the originally created case.
//
// @Summary      Open a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createCaseRequest  true   "Case details"
// @Success      201              {object}  domain.Case
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateCaseInput{
		CaseNumber:     req.CaseNumber,
		Title:          req.Title,
		Description:    req.Description,
		CaseType:       req.CaseType,
		Status:         req.Status,
		Priority:       req.Priority,
		ClientID:       req.ClientID,
		AssignedToID:   req.AssignedToID,
		CreatedByID:    identity.ID,
		NextHearing:    req.NextHearing,
		EstimatedValue: req.EstimatedValue,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.CasesCreatedTotal.WithLabelValues(created.CaseType).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/cases/:id.
//
// @Summary      Get a case by id
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Case id"
// @Success      200  {object}  domain.Case
// @Failure      404  {object}  errorResponse
// @Router       /cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	found, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so the service applies its defaults.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
