package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

// SetupUserRouter mounts the signed-in user's home screens.
func SetupUserRouter(e *echo.Echo) {
	dashboardHandler := handler.GetDashboardHandler()
	settingsHandler := handler.GetSettingsHandler()

	e.GET("/dashboard", dashboardHandler.UserDashboard)
	e.GET("/referrals", dashboardHandler.Referrals)

	e.GET("/settings", settingsHandler.Show)
	e.POST("/settings", settingsHandler.UpdateProfile)
}
