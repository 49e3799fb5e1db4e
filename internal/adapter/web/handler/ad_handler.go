package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
	"earnhub/pkg/utils"
)

type AdHandler struct {
	registry *usecase.ContextRegistry
}

func NewAdHandler(registry *usecase.ContextRegistry) *AdHandler {
	return &AdHandler{
		registry: registry,
	}
}

type postAdRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// ListMine returns the user's ads plus their derived stats.
func (h *AdHandler) ListMine(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ads, err := set.Data.LoadAds(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ads":   ads,
		"stats": set.Data.AdStats(),
	})
}

func (h *AdHandler) Post(c echo.Context) error {
	var req postAdRequest
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

	ad, err := set.Data.PostAd(c.Request().Context(), req.Title, req.Description, req.Image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ad)
}

// ListAll is the admin approval queue: every ad on the platform, paginated.
func (h *AdHandler) ListAll(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ads, err := set.Data.LoadAllAds(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	page := utils.Paginate(ads, params.Offset, params.PageSize)

	return response.Paginated(c, page, int64(len(ads)), params.Page, params.PageSize)
}

func (h *AdHandler) Approve(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ad, err := set.Data.ApproveAd(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ad)
}

func (h *AdHandler) Reject(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ad, err := set.Data.RejectAd(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ad)
}

func (h *AdHandler) Delete(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	if err := set.Data.DeleteAd(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Ad deleted",
	})
}
