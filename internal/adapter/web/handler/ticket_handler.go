package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type TicketHandler struct {
	registry *usecase.ContextRegistry
}

func NewTicketHandler(registry *usecase.ContextRegistry) *TicketHandler {
	return &TicketHandler{
		registry: registry,
	}
}

type createTicketRequest struct {
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

func (h *TicketHandler) List(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	tickets, err := set.Data.LoadTickets(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tickets)
}

func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ticket, err := set.Data.CreateTicket(c.Request().Context(), req.Subject, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

func (h *TicketHandler) Close(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ticket, err := set.Data.CloseTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}
