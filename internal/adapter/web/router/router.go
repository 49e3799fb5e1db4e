package router

import (
	"earnhub/internal/adapter/web/middleware"

	"github.com/labstack/echo/v4"
)

// Setup mounts the full console route map. The session resolver and the
// role guard run on every request; per-area routers only add handlers.
func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, guard *middleware.GuardMiddleware) {
	e.Use(sessionMiddleware.Resolve)
	e.Use(guard.Enforce)

	SetupAuthRouter(e)
	SetupUserRouter(e)
	SetupAdRouter(e)
	SetupProductRouter(e)
	SetupRatingRouter(e)
	SetupPayoutRouter(e)
	SetupTicketRouter(e)
	SetupAdminRouter(e)
	SetupHealthRouter(e)
}
