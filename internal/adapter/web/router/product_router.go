package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

// SetupProductRouter mounts the user-facing product catalog. Product
// management lives under the admin tree.
func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	e.GET("/products", productHandler.List)
}
