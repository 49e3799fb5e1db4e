package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
	"earnhub/internal/infrastructure/session"
	"earnhub/internal/infrastructure/ws"
	"earnhub/internal/usecase"
	"earnhub/pkg/errors"
)

var (
	authHandler      *AuthHandler
	dashboardHandler *DashboardHandler
	adHandler        *AdHandler
	productHandler   *ProductHandler
	ratingHandler    *RatingHandler
	payoutHandler    *PayoutHandler
	fundHandler      *FundHandler
	ticketHandler    *TicketHandler
	settingsHandler  *SettingsHandler
	adminHandler     *AdminHandler
	websocketHandler *WebSocketHandler
	healthHandler    *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	registry *usecase.ContextRegistry,
	hub *ws.Hub,
	version string,
) {
	authHandler = NewAuthHandler(authUseCase)
	dashboardHandler = NewDashboardHandler(registry)
	adHandler = NewAdHandler(registry)
	productHandler = NewProductHandler(registry)
	ratingHandler = NewRatingHandler(registry)
	payoutHandler = NewPayoutHandler(registry)
	fundHandler = NewFundHandler(registry)
	ticketHandler = NewTicketHandler(registry)
	settingsHandler = NewSettingsHandler(registry)
	adminHandler = NewAdminHandler(registry)
	websocketHandler = NewWebSocketHandler(hub)
	healthHandler = NewHealthHandler(version)
}

func GetAuthHandler() *AuthHandler { return authHandler }

func GetDashboardHandler() *DashboardHandler { return dashboardHandler }

func GetAdHandler() *AdHandler { return adHandler }

func GetProductHandler() *ProductHandler { return productHandler }

func GetRatingHandler() *RatingHandler { return ratingHandler }

func GetPayoutHandler() *PayoutHandler { return payoutHandler }

func GetFundHandler() *FundHandler { return fundHandler }

func GetTicketHandler() *TicketHandler { return ticketHandler }

func GetSettingsHandler() *SettingsHandler { return settingsHandler }

func GetAdminHandler() *AdminHandler { return adminHandler }

func GetWebSocketHandler() *WebSocketHandler { return websocketHandler }

func GetHealthHandler() *HealthHandler { return healthHandler }

// currentStore returns the request's session store, placed there by the
// session middleware.
func currentStore(c echo.Context) (session.Store, error) {
	store, ok := c.Get("store").(session.Store)
	if !ok {
		return nil, errors.Internal("Session store missing from request", nil)
	}
	return store, nil
}

// currentSet resolves the signed-in identity's domain context set. Handlers
// behind the guard can rely on the identity being present; this is the
// backstop for direct calls.
func currentSet(c echo.Context, registry *usecase.ContextRegistry) (*usecase.ContextSet, *entity.Identity, error) {
	identity, ok := c.Get("identity").(*entity.Identity)
	token, _ := c.Get("token").(string)
	if !ok || token == "" {
		return nil, nil, errors.Unauthorized("No active session", nil)
	}
	return registry.For(token, *identity), identity, nil
}
