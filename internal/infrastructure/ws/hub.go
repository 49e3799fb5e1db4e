package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"earnhub/internal/domain/entity"
	"earnhub/pkg/logger"
)

// Client represents one open chat-widget connection
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub manages the live ticket-widget connections, one per signed-in user.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's main loop in a goroutine
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if old, ok := h.clients[client.UserID]; ok && old != client {
					// A reconnect replaces the previous widget connection.
					close(old.Send)
				}
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				logger.Debug("Ticket widget connected: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				// Only the client that owns the slot may free it; a stale
				// connection unregistering must not evict its replacement.
				if current, ok := h.clients[client.UserID]; ok && current == client {
					delete(h.clients, client.UserID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Ticket widget disconnected: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NotifyTicket pushes a ticket event to the owning user's open widget, if any.
func (h *Hub) NotifyTicket(userID string, event entity.TicketEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		logger.Warn("Failed to encode ticket event: %v", err)
		return
	}

	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if ok {
		select {
		case client.Send <- message:
		default:
			// Slow consumer; drop the event rather than block the caller.
		}
	}
}

// ReadPump drains messages from the connection until it closes.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Ticket widget read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
