package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

func SetupPayoutRouter(e *echo.Echo) {
	payoutHandler := handler.GetPayoutHandler()
	fundHandler := handler.GetFundHandler()

	e.GET("/payouts", payoutHandler.History)
	e.POST("/payouts", payoutHandler.Request)

	e.GET("/fund", fundHandler.Show)
	e.POST("/fund", fundHandler.Deposit)
}
