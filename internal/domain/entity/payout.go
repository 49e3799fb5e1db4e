package entity

import "time"

type Payout struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"` // "bank", "paypal", "stripe", "usdt"
	Status      string    `json:"status"` // "pending", "completed", "failed"
	Reference   string    `json:"reference,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

const (
	PayoutStatusPending   = "pending"
	PayoutStatusCompleted = "completed"
	PayoutStatusFailed    = "failed"
)

// PayoutStats is derived from a payout list for the history page header.
type PayoutStats struct {
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Failed    int     `json:"failed"`
	TotalPaid float64 `json:"totalPaid"`
}

func ComputePayoutStats(payouts []Payout) PayoutStats {
	var stats PayoutStats
	for _, p := range payouts {
		switch p.Status {
		case PayoutStatusCompleted:
			stats.Completed++
			stats.TotalPaid += p.Amount
		case PayoutStatusPending:
			stats.Pending++
		case PayoutStatusFailed:
			stats.Failed++
		}
	}
	return stats
}
