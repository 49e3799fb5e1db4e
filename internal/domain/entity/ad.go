package entity

import "time"

type Ad struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Status      string    `json:"status"` // "pending", "approved", "rejected"
	Views       int       `json:"views"`
	Rating      float64   `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	AdStatusPending  = "pending"
	AdStatusApproved = "approved"
	AdStatusRejected = "rejected"
)
