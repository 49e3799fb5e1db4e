package router

import (
	"net/http"

	"earnhub/internal/adapter/web/handler"
	"earnhub/internal/adapter/web/middleware"
	"earnhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter mounts the public entry points. Credential endpoints are
// rate limited per client IP.
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.GET("/", func(c echo.Context) error {
		identity, _ := c.Get("identity").(*entity.Identity)
		return c.Redirect(http.StatusFound, middleware.RedirectTarget(identity))
	})

	e.POST("/login", authHandler.Login, middleware.LoginRateLimit())
	e.POST("/register", authHandler.Register, middleware.LoginRateLimit())
	e.POST("/logout", authHandler.Logout)
}
