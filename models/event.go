package models

import "time"

// EventType is a label describing how an event is run. No scheduling logic is
// attached to it in this service.
type EventType string

const (
	TypeRoundRobin EventType = "roundRobin"
	TypeBracket    EventType = "bracket"
	TypeLadder     EventType = "ladder"
	TypeSocial     EventType = "social"
)

// EventFormat matches the DUPR rating categories.
type EventFormat string

const (
	FormatSingles EventFormat = "singles"
	FormatDoubles EventFormat = "doubles"
	FormatMixed   EventFormat = "mixed"
)

// SkillLevel is the advertised rating band label shown on listings.
type SkillLevel string

const (
	Skill25to30 SkillLevel = "2.5-3.0"
	Skill30to35 SkillLevel = "3.0-3.5"
	Skill35to40 SkillLevel = "3.5-4.0"
	Skill40to45 SkillLevel = "4.0-4.5"
	Skill45Plus SkillLevel = "4.5+"
)

// Event is an immutable event definition. Capacity is a ceiling only:
// CurrentParticipants is derived from the registration ledger, never stored.
type Event struct {
	ID                   string      `json:"id" db:"id"`
	Name                 string      `json:"name" db:"name"`
	Type                 EventType   `json:"type" db:"type"`
	Format               EventFormat `json:"format" db:"format"`
	SkillLevel           SkillLevel  `json:"skill_level" db:"skill_level"`
	EventDate            string      `json:"event_date" db:"event_date"`
	StartTime            string      `json:"start_time" db:"start_time"`
	EndTime              string      `json:"end_time" db:"end_time"`
	RegistrationDeadline string      `json:"registration_deadline" db:"registration_deadline"`
	MinRating            float64     `json:"min_rating" db:"min_rating"`
	MaxRating            float64     `json:"max_rating" db:"max_rating"`
	EntryFeeUSDC         float64     `json:"entry_fee_usdc" db:"entry_fee_usdc"`
	MaxParticipants      int         `json:"max_participants" db:"max_participants"`
	Location             string      `json:"location" db:"location"`
	Description          *string     `json:"description,omitempty" db:"description"`
	ImageURL             *string     `json:"image_url,omitempty" db:"image_url"`
	CreatedBy            string      `json:"created_by" db:"created_by"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`

	// SeedParticipants is the baseline shipped with seed events. It is only
	// shown while the ledger holds no registrations for the event.
	SeedParticipants int `json:"-" db:"seed_participants"`

	// CurrentParticipants is recomputed from the registration ledger on read.
	CurrentParticipants int `json:"current_participants" db:"-"`
}

// ValidType reports whether t is one of the known event type labels.
func ValidType(t EventType) bool {
	switch t {
	case TypeRoundRobin, TypeBracket, TypeLadder, TypeSocial:
		return true
	}
	return false
}

// ValidFormat reports whether f is one of the known event formats.
func ValidFormat(f EventFormat) bool {
	switch f {
	case FormatSingles, FormatDoubles, FormatMixed:
		return true
	}
	return false
}

// ValidSkillLevel reports whether s is one of the advertised rating bands.
func ValidSkillLevel(s SkillLevel) bool {
	switch s {
	case Skill25to30, Skill30to35, Skill35to40, Skill40to45, Skill45Plus:
		return true
	}
	return false
}
