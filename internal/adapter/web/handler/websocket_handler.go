package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
	"earnhub/internal/infrastructure/ws"
	"earnhub/pkg/errors"
	"earnhub/pkg/logger"
	"earnhub/pkg/response"
)

type WebSocketHandler struct {
	hub *ws.Hub
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin console; the session cookie is the credential.
		return true
	},
}

func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// TicketWidget upgrades the connection and streams ticket events for the
// signed-in user until the widget closes.
func (h *WebSocketHandler) TicketWidget(c echo.Context) error {
	identity, ok := c.Get("identity").(*entity.Identity)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written its own HTTP error reply.
		logger.Warn("Ticket widget upgrade failed for %s: %v", identity.ID, err)
		return nil
	}

	client := &ws.Client{
		UserID: identity.ID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
