package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

// SetupAdminRouter mounts the admin console: ad review queue, product
// management, platform stats and the user list.
func SetupAdminRouter(e *echo.Echo) {
	adminHandler := handler.GetAdminHandler()
	adHandler := handler.GetAdHandler()
	productHandler := handler.GetProductHandler()

	admin := e.Group("/admin")

	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)

	admin.GET("/ads", adHandler.ListAll)
	admin.POST("/ads/:id/approve", adHandler.Approve)
	admin.POST("/ads/:id/reject", adHandler.Reject)
	admin.DELETE("/ads/:id", adHandler.Delete)

	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Add)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
}
