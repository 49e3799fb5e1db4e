package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/adapter/web/middleware"
	"earnhub/internal/domain/entity"
	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FullName     string `json:"fullName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	ReferralCode string `json:"referralCode" validate:"omitempty,alphanum"`
}

type authResponse struct {
	User     *entity.Identity `json:"user"`
	Redirect string           `json:"redirect"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := currentStore(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Login(c.Request().Context(), store, req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		User:     user,
		Redirect: middleware.RedirectTarget(user),
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := currentStore(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), store, usecase.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		User:     user,
		Redirect: middleware.RedirectTarget(user),
	})
}

// Logout always succeeds, signed in or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	store, err := currentStore(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.Logout(store); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message":  "Signed out",
		"redirect": "/login",
	})
}
