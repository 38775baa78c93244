package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
	"github.com/dinklabs/dinkpass/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// countWorkers bounds the ledger count fan-out when listing events.
const countWorkers = 8

// EventService owns the event catalog. Events are created once and never
// mutated; participant counts are always recomputed from the registration
// ledger rather than stored on the event.
type EventService struct {
	events        repositories.EventRepository
	registrations repositories.RegistrationRepository
	uploader      storage.FileUploader // optional, nil disables banner uploads
	metrics       metrics.Metrics
	logger        *slog.Logger
}

func NewEventService(
	events repositories.EventRepository,
	registrations repositories.RegistrationRepository,
	uploader storage.FileUploader,
	m metrics.Metrics,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		events:        events,
		registrations: registrations,
		uploader:      uploader,
		metrics:       m,
		logger:        logger,
	}
}

type CreateEventInput struct {
	Name                 string             `json:"name"`
	Type                 models.EventType   `json:"type"`
	Format               models.EventFormat `json:"format"`
	SkillLevel           models.SkillLevel  `json:"skill_level"`
	EventDate            string             `json:"event_date"`
	StartTime            string             `json:"start_time"`
	EndTime              string             `json:"end_time"`
	RegistrationDeadline string             `json:"registration_deadline"`
	MinRating            float64            `json:"min_rating"`
	MaxRating            float64            `json:"max_rating"`
	EntryFeeUSDC         float64            `json:"entry_fee_usdc"`
	MaxParticipants      int                `json:"max_participants"`
	Location             string             `json:"location"`
	Description          *string            `json:"description,omitempty"`

	// ImageData carries a base64 data URL from the create form. When an
	// uploader is configured the decoded image is stored and ImageURL is
	// replaced by the public location.
	ImageData string  `json:"image_data,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

func validateCreateEventInput(input CreateEventInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return ErrEventNameRequired
	case strings.TrimSpace(input.EventDate) == "":
		return ErrEventDateRequired
	case !models.ValidType(input.Type):
		return ErrEventInvalidType
	case !models.ValidFormat(input.Format):
		return ErrEventInvalidFormat
	case !models.ValidSkillLevel(input.SkillLevel):
		return ErrEventInvalidSkillLevel
	case input.MinRating <= 0 || input.MaxRating <= 0 || input.MinRating > input.MaxRating:
		return ErrEventInvalidRatingBand
	case input.MaxParticipants <= 0:
		return ErrEventInvalidCapacity
	case input.EntryFeeUSDC < 0:
		return ErrEventInvalidEntryFee
	}
	return nil
}

// CreateEvent validates the input, optionally uploads the banner image, and
// stores the event under a fresh id. createdBy is the authenticated wallet
// address of the organizer.
func (s *EventService) CreateEvent(ctx context.Context, createdBy string, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(createdBy) == "" {
		return nil, ErrEventCreatorRequired
	}
	if err := validateCreateEventInput(input); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:                   uuid.NewString(),
		Name:                 strings.TrimSpace(input.Name),
		Type:                 input.Type,
		Format:               input.Format,
		SkillLevel:           input.SkillLevel,
		EventDate:            input.EventDate,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		RegistrationDeadline: input.RegistrationDeadline,
		MinRating:            input.MinRating,
		MaxRating:            input.MaxRating,
		EntryFeeUSDC:         input.EntryFeeUSDC,
		MaxParticipants:      input.MaxParticipants,
		Location:             input.Location,
		Description:          input.Description,
		ImageURL:             input.ImageURL,
		CreatedBy:            createdBy,
		CreatedAt:            time.Now().UTC(),
	}

	if input.ImageData != "" && s.uploader != nil {
		location, err := s.uploadBanner(ctx, event.ID, input.ImageData)
		if err != nil {
			// The banner is cosmetic; a storage hiccup should not block the
			// event itself.
			s.logger.Warn("banner upload failed", slog.String("event_id", event.ID), slog.Any("error", err))
		} else {
			event.ImageURL = &location
		}
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}

	s.metrics.IncEventsCreated()
	s.logger.Info("event created",
		slog.String("event_id", event.ID),
		slog.String("name", event.Name),
		slog.String("created_by", event.CreatedBy),
	)
	return event, nil
}

// ListEvents returns the full catalog (seed events unioned with user-created
// ones, insertion order) with participant counts recomputed from the ledger.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(countWorkers)
	for _, event := range events {
		event := event
		g.Go(func() error {
			return s.attachCount(gctx, event)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent returns a single event with its live participant count.
func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if err := s.attachCount(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// attachCount fills CurrentParticipants from the ledger. The seed baseline is
// only shown while the ledger has no rows for the event; after that the
// ledger is the sole source of truth.
func (s *EventService) attachCount(ctx context.Context, event *models.Event) error {
	count, err := s.registrations.CountByEvent(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to count registrations for event %s: %w", event.ID, err)
	}
	if count == 0 {
		event.CurrentParticipants = event.SeedParticipants
		return nil
	}
	event.CurrentParticipants = count
	return nil
}

// uploadBanner decodes a "data:<mime>;base64,<payload>" image and stores it
// under the event's banner key.
func (s *EventService) uploadBanner(ctx context.Context, eventID, dataURL string) (string, error) {
	contentType, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ";base64,")
	if !ok || !strings.HasPrefix(contentType, "image/") {
		return "", errors.New("image data must be a base64 image data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode banner image: %w", err)
	}

	ext := strings.TrimPrefix(contentType, "image/")
	key := fmt.Sprintf("events/%s/banner.%s", eventID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
