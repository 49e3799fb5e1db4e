package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

func SetupAdRouter(e *echo.Echo) {
	adHandler := handler.GetAdHandler()

	e.GET("/ads", adHandler.ListMine)
	e.POST("/ads", adHandler.Post)
}
