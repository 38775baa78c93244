package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
	"github.com/google/uuid"
)

// IdentifierResolver maps a player-entered identifier (address or name) to a
// wallet address, returning "" when it cannot be resolved.
type IdentifierResolver interface {
	Resolve(ctx context.Context, input string) string
}

// RatingVerifier cross-checks a self-reported rating against the official
// DUPR record. Lookups are advisory and may fail without blocking a
// registration.
type RatingVerifier interface {
	VerifyRating(ctx context.Context, duprID string, format models.EventFormat, minRating, maxRating float64) (bool, error)
}

// RegistrationService accepts or rejects registration attempts and exposes
// the roster for an event. The ledger is append-only: accepted registrations
// are never mutated or deleted.
type RegistrationService struct {
	registrations repositories.RegistrationRepository
	events        repositories.EventRepository
	resolver      IdentifierResolver
	verifier      RatingVerifier // optional, nil disables the DUPR cross-check
	metrics       metrics.Metrics
	logger        *slog.Logger
}

func NewRegistrationService(
	registrations repositories.RegistrationRepository,
	events repositories.EventRepository,
	resolver IdentifierResolver,
	verifier RatingVerifier,
	m metrics.Metrics,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		events:        events,
		resolver:      resolver,
		verifier:      verifier,
		metrics:       m,
		logger:        logger,
	}
}

type RegisterInput struct {
	EventID string `json:"event_id"`

	// PlayerAddress may be a raw wallet address, a .base.eth name, or a .eth
	// name; names are resolved before the attempt is validated.
	PlayerAddress string  `json:"player_address"`
	PlayerName    string  `json:"player_name"`
	DUPRID        string  `json:"dupr_id"`
	DUPRRating    float64 `json:"dupr_rating"`
}

// Register validates the attempt and appends it to the ledger. The capacity
// check is delegated to the repository, which performs it atomically with the
// insert; a rejection for any reason leaves the ledger untouched.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*models.Registration, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			s.metrics.IncRegistrationsRejected("event_not_found")
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.PlayerName) == "" {
		s.metrics.IncRegistrationsRejected("invalid_input")
		return nil, ErrPlayerNameRequired
	}
	if strings.TrimSpace(input.DUPRID) == "" {
		s.metrics.IncRegistrationsRejected("invalid_input")
		return nil, ErrDUPRIDRequired
	}
	if input.DUPRRating < event.MinRating || input.DUPRRating > event.MaxRating {
		s.metrics.IncRegistrationsRejected("rating_out_of_range")
		return nil, &RatingOutOfRangeError{
			Rating:    input.DUPRRating,
			MinRating: event.MinRating,
			MaxRating: event.MaxRating,
		}
	}

	address := s.resolver.Resolve(ctx, input.PlayerAddress)
	if address == "" {
		s.metrics.IncResolutionFailures()
		s.metrics.IncRegistrationsRejected("unresolved_player")
		if strings.HasSuffix(strings.TrimSpace(input.PlayerAddress), ".eth") {
			return nil, ErrPlayerUnresolved
		}
		return nil, ErrPlayerAddressInvalid
	}

	s.crossCheckRating(ctx, event, input)

	registration := &models.Registration{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		PlayerAddress: address,
		PlayerName:    strings.TrimSpace(input.PlayerName),
		DUPRID:        strings.TrimSpace(input.DUPRID),
		DUPRRating:    input.DUPRRating,
		RegisteredAt:  time.Now().UTC(),
		Status:        models.RegistrationPending,
	}

	if err := s.registrations.Create(ctx, registration); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRegistrationCapacity):
			s.metrics.IncRegistrationsRejected("event_full")
			return nil, ErrEventFull
		case errors.Is(err, repositories.ErrRegistrationConflict):
			s.metrics.IncRegistrationsRejected("duplicate")
			return nil, ErrAlreadyRegistered
		case errors.Is(err, repositories.ErrRegistrationEventInvalid):
			s.metrics.IncRegistrationsRejected("event_not_found")
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}

	s.metrics.IncRegistrationsAccepted()
	s.logger.Info("registration accepted",
		slog.String("event_id", event.ID),
		slog.String("registration_id", registration.ID),
		slog.String("player_address", registration.PlayerAddress),
	)
	return registration, nil
}

// crossCheckRating compares the self-reported rating with the official DUPR
// record when a verifier is configured. A mismatch or an unreachable backend
// is logged but never blocks the registration.
func (s *RegistrationService) crossCheckRating(ctx context.Context, event *models.Event, input RegisterInput) {
	if s.verifier == nil {
		return
	}
	ok, err := s.verifier.VerifyRating(ctx, input.DUPRID, event.Format, event.MinRating, event.MaxRating)
	if err != nil {
		s.logger.Warn("dupr rating check unavailable", slog.String("dupr_id", input.DUPRID), slog.Any("error", err))
		return
	}
	if !ok {
		s.logger.Warn("self-reported rating disagrees with dupr record",
			slog.String("event_id", event.ID),
			slog.String("dupr_id", input.DUPRID),
			slog.Float64("reported_rating", input.DUPRRating),
		)
	}
}

// ListRegistrations returns the roster for an event, newest first. An
// unknown event yields an empty roster, not an error; callers that need to
// distinguish the two cases check event existence separately.
func (s *RegistrationService) ListRegistrations(ctx context.Context, eventID string) ([]*models.Registration, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}

// CountRegistrations returns the number of accepted registrations for an
// event.
func (s *RegistrationService) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	return s.registrations.CountByEvent(ctx, eventID)
}
