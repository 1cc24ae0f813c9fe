package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

type createClientRequest struct {
	FullName   string `json:"full_name"   validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"       validate:"omitempty"`
	Address    string `json:"address"     validate:"omitempty"`
	ClientType string `json:"client_type" validate:"omitempty,oneof=individual corporate government"`
	Status     string `json:"status"      validate:"omitempty,oneof=active inactive prospect"`
	Notes      string `json:"notes"       validate:"omitempty"`
}

type listClientsResponse struct {
	Clients []domain.Client `json:"clients"`
	paginationResponse
}

// ClientHandler handles HTTP requests for client-record operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Match against name or email"
// @Param        clientType  query     string  false  "Client type"
// @Param        status      query     string  false  "Client status"
// @Param        page        query     int     false  "Page (default 1)"
// @Param        limit       query     int     false  "Page size (default 12)"
// @Success      200         {object}  listClientsResponse
// @Failure      401         {object}  errorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListClientsInput{
		Search:     c.QueryParam("search"),
		ClientType: c.QueryParam("clientType"),
		Status:     c.QueryParam("status"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listClientsResponse{
		Clients: result.Clients,
		paginationResponse: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /api/clients.
//
// @Summary      Register a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		ClientType: req.ClientType,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
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
