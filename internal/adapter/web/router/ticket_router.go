package router

import (
	"earnhub/internal/adapter/web/handler"

	"github.com/labstack/echo/v4"
)

// SetupTicketRouter mounts ticket CRUD plus the live widget socket.
func SetupTicketRouter(e *echo.Echo) {
	ticketHandler := handler.GetTicketHandler()
	websocketHandler := handler.GetWebSocketHandler()

	e.GET("/tickets", ticketHandler.List)
	e.POST("/tickets", ticketHandler.Create)
	e.POST("/tickets/:id/close", ticketHandler.Close)

	e.GET("/ws/tickets", websocketHandler.TicketWidget)
}
