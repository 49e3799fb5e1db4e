package entity

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	RatedBy     int       `json:"ratedBy"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	AddedBy     string    `json:"addedBy"`
	AddedTime   time.Time `json:"addedTime"`
}
