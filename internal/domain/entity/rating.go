package entity

import "time"

type Rating struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty"`
	Earning   float64   `json:"earning,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AverageRating is the mean of the given ratings rounded to one decimal
// place, the rounding rule used everywhere a rating is displayed. Zero
// ratings yield 0.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(ratings))
	return float64(int(avg*10+0.5)) / 10
}
