package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type FundHandler struct {
	registry *usecase.ContextRegistry
}

func NewFundHandler(registry *usecase.ContextRegistry) *FundHandler {
	return &FundHandler{
		registry: registry,
	}
}

type depositRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=bank paypal stripe usdt"`
	Reference string  `json:"reference" validate:"omitempty,max=128"`
}

// Show presents the fund page: current balance and the accepted methods.
func (h *FundHandler) Show(c echo.Context) error {
	_, identity, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"balance": identity.Balance,
		"methods": []string{"bank", "paypal", "stripe", "usdt"},
	})
}

func (h *FundHandler) Deposit(c echo.Context) error {
	var req depositRequest
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

	tx, err := set.Fund.Deposit(c.Request().Context(), req.Amount, req.Method, req.Reference)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, tx)
}
