package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

func SetupRatingRouter(e *echo.Echo) {
	ratingHandler := handler.GetRatingHandler()

	e.GET("/ratings", ratingHandler.Mine)
	e.POST("/ratings", ratingHandler.Submit)
	e.GET("/ratings/product/:productId", ratingHandler.ByProduct)
	e.GET("/ratings/check/:productId", ratingHandler.Check)
}
