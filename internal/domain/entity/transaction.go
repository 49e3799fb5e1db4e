package entity

import "time"

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"` // "payment", "referral", "rating", "deposit"
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	TransactionTypePayment  = "payment"
	TransactionTypeReferral = "referral"
	TransactionTypeRating   = "rating"
	TransactionTypeDeposit  = "deposit"
)
