package models

import "time"

// RegistrationStatus tracks whether the payment step is still outstanding.
// The pending -> confirmed transition happens once settlement exists; today
// every registration stays pending.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
)

// Registration is one accepted signup for an event. Records are append-only:
// never mutated or deleted after insertion.
type Registration struct {
	ID            string             `json:"id" db:"id"`
	EventID       string             `json:"event_id" db:"event_id"`
	PlayerAddress string             `json:"player_address" db:"player_address"`
	PlayerName    string             `json:"player_name" db:"player_name"`
	DUPRID        string             `json:"dupr_id" db:"dupr_id"`
	DUPRRating    float64            `json:"dupr_rating" db:"dupr_rating"`
	RegisteredAt  time.Time          `json:"registered_at" db:"registered_at"`
	Status        RegistrationStatus `json:"status" db:"status"`
}
