package services

import (
	"errors"
	"fmt"
)

// Shared errors used across services and the HTTP mapping layer.
var (
	// Lookup failures
	ErrEventNotFound = errors.New("event not found")

	// Event validation
	ErrEventNameRequired      = errors.New("event name is required")
	ErrEventDateRequired      = errors.New("event date is required")
	ErrEventInvalidType       = errors.New("invalid event type")
	ErrEventInvalidFormat     = errors.New("invalid event format")
	ErrEventInvalidSkillLevel = errors.New("invalid skill level")
	ErrEventInvalidRatingBand = errors.New("event min rating must not exceed max rating")
	ErrEventInvalidCapacity   = errors.New("event max participants must be positive")
	ErrEventInvalidEntryFee   = errors.New("event entry fee must not be negative")
	ErrEventCreatorRequired   = errors.New("event creator address is required")

	// Registration validation and business rules
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrDUPRIDRequired       = errors.New("dupr id is required")
	ErrPlayerAddressInvalid = errors.New("player address is not a valid wallet address")
	ErrPlayerUnresolved     = errors.New("player name could not be resolved to a wallet address")
	ErrEventFull            = errors.New("event registration is full")
	ErrAlreadyRegistered    = errors.New("player is already registered for this event")

	// Charge stub
	ErrChargeInvalidAmount = errors.New("charge amount must not be negative")
	ErrChargeFailed        = errors.New("failed to create charge")
)

// RatingOutOfRangeError reports a DUPR rating outside the event band. The
// message carries the band so the caller can surface it to the player.
type RatingOutOfRangeError struct {
	Rating    float64
	MinRating float64
	MaxRating float64
}

func (e *RatingOutOfRangeError) Error() string {
	return fmt.Sprintf("dupr rating %.1f is outside the allowed band %.1f-%.1f", e.Rating, e.MinRating, e.MaxRating)
}
