package entity

import "time"

type SupportTicket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "open", "closed"
	CreatedAt time.Time `json:"createdAt"`
}

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// TicketEvent is pushed to the chat widget over the websocket hub when a
// ticket is created or its status changes.
type TicketEvent struct {
	Type   string        `json:"type"` // "created", "closed"
	Ticket SupportTicket `json:"ticket"`
}
