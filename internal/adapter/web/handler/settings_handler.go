package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type SettingsHandler struct {
	registry *usecase.ContextRegistry
}

func NewSettingsHandler(registry *usecase.ContextRegistry) *SettingsHandler {
	return &SettingsHandler{
		registry: registry,
	}
}

type updateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
}

// Show re-fetches the profile from the platform so settings always shows
// current data rather than the login-time snapshot.
func (h *SettingsHandler) Show(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := set.User.Refresh(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *SettingsHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
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

	profile, err := set.User.UpdateProfile(c.Request().Context(), req.FullName, req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
