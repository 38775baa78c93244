package models

import "time"

// Charge is the stubbed payment record correlated with a registration by
// shared field values. There is no settlement path yet, so status never
// leaves "pending".
type Charge struct {
	ID               string    `json:"id" db:"id"`
	Amount           float64   `json:"amount" db:"amount"`
	RecipientAddress string    `json:"recipient_address" db:"recipient_address"`
	RecipientName    string    `json:"recipient_name" db:"recipient_name"`
	EventID          string    `json:"event_id" db:"event_id"`
	DUPRID           string    `json:"dupr_id" db:"dupr_id"`
	DUPRRating       float64   `json:"dupr_rating" db:"dupr_rating"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
