package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/usecase"
	"earnhub/pkg/response"
	"earnhub/pkg/utils"
)

type AdminHandler struct {
	registry *usecase.ContextRegistry
}

func NewAdminHandler(registry *usecase.ContextRegistry) *AdminHandler {
	return &AdminHandler{
		registry: registry,
	}
}

type adminDashboardView struct {
	Stats      *repository.PlatformStats `json:"stats"`
	PendingAds []*entity.Ad              `json:"pendingAds"`
}

// Dashboard is the admin landing screen: platform stats plus the ads
// waiting for review.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	stats, err := set.Admin.Stats(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	ads, err := set.Data.LoadAllAds(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	pending := make([]*entity.Ad, 0)
	for _, ad := range ads {
		if ad.Status == entity.AdStatusPending {
			pending = append(pending, ad)
		}
	}

	return response.Success(c, adminDashboardView{
		Stats:      stats,
		PendingAds: pending,
	})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	stats, err := set.Admin.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	users, err := set.Admin.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	page := utils.Paginate(users, params.Offset, params.PageSize)

	return response.Paginated(c, page, int64(len(users)), params.Page, params.PageSize)
}
