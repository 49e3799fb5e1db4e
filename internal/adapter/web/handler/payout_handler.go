package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type PayoutHandler struct {
	registry *usecase.ContextRegistry
}

func NewPayoutHandler(registry *usecase.ContextRegistry) *PayoutHandler {
	return &PayoutHandler{
		registry: registry,
	}
}

type payoutRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=bank paypal stripe usdt"`
}

// History returns the payout list plus the stats derived from it.
func (h *PayoutHandler) History(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	payouts, err := set.Fund.LoadPayoutHistory(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"payouts": payouts,
		"stats":   set.Fund.PayoutStats(),
	})
}

func (h *PayoutHandler) Request(c echo.Context) error {
	var req payoutRequest
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

	payout, err := set.Fund.RequestPayout(c.Request().Context(), req.Amount, req.Method)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payout)
}
