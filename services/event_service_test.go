package services

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
	"github.com/dinklabs/dinkpass/storage"
	"github.com/dinklabs/dinkpass/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	lastKey         string
	lastContentType string
	err             error
}

func (u *stubUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	if _, err := io.ReadAll(reader); err != nil {
		return nil, err
	}
	u.lastKey = key
	u.lastContentType = contentType
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (u *stubUploader) Delete(context.Context, string) error { return nil }

func (u *stubUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }

func newEventService(t *testing.T, uploader storage.FileUploader, seed ...*models.Event) (*EventService, repositories.RegistrationRepository) {
	t.Helper()
	eventRepo := repositories.NewMemoryEventRepository(seed...)
	registrationRepo := repositories.NewMemoryRegistrationRepository(eventRepo)
	svc := NewEventService(eventRepo, registrationRepo, uploader, metrics.Noop{}, testLogger())
	return svc, registrationRepo
}

func createEventInput() CreateEventInput {
	return CreateEventInput{
		Name:            "Autumn Doubles Clash",
		Type:            models.TypeBracket,
		Format:          models.FormatDoubles,
		SkillLevel:      models.Skill35to40,
		EventDate:       "2026-11-07",
		StartTime:       "09:00",
		EndTime:         "15:00",
		MinRating:       3.5,
		MaxRating:       4.0,
		EntryFeeUSDC:    40,
		MaxParticipants: 16,
		Location:        "Riverside Courts",
	}
}

func TestCreateEventSuccess(t *testing.T) {
	svc, _ := newEventService(t, nil)
	creator := wallet.Checksum(testAddress(0))

	event, err := svc.CreateEvent(context.Background(), creator, createEventInput())
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Autumn Doubles Clash", event.Name)
	assert.Equal(t, creator, event.CreatedBy)
	assert.False(t, event.CreatedAt.IsZero())

	got, err := svc.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, got.Name)
	assert.Equal(t, 0, got.CurrentParticipants)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateEventInput)
		wantErr error
	}{
		{"blank name", func(in *CreateEventInput) { in.Name = "  " }, ErrEventNameRequired},
		{"blank date", func(in *CreateEventInput) { in.EventDate = "" }, ErrEventDateRequired},
		{"unknown type", func(in *CreateEventInput) { in.Type = "marathon" }, ErrEventInvalidType},
		{"unknown format", func(in *CreateEventInput) { in.Format = "triples" }, ErrEventInvalidFormat},
		{"unknown skill level", func(in *CreateEventInput) { in.SkillLevel = "5.5+" }, ErrEventInvalidSkillLevel},
		{"inverted rating band", func(in *CreateEventInput) { in.MinRating, in.MaxRating = 4.5, 3.0 }, ErrEventInvalidRatingBand},
		{"zero min rating", func(in *CreateEventInput) { in.MinRating = 0 }, ErrEventInvalidRatingBand},
		{"zero capacity", func(in *CreateEventInput) { in.MaxParticipants = 0 }, ErrEventInvalidCapacity},
		{"negative entry fee", func(in *CreateEventInput) { in.EntryFeeUSDC = -1 }, ErrEventInvalidEntryFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t, nil)
			input := createEventInput()
			tt.mutate(&input)

			_, err := svc.CreateEvent(context.Background(), testAddress(0), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateEventRequiresCreator(t *testing.T) {
	svc, _ := newEventService(t, nil)

	_, err := svc.CreateEvent(context.Background(), "  ", createEventInput())
	assert.ErrorIs(t, err, ErrEventCreatorRequired)
}

func TestCreateEventUploadsBanner(t *testing.T) {
	uploader := &stubUploader{}
	svc, _ := newEventService(t, uploader)

	input := createEventInput()
	input.ImageData = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	event, err := svc.CreateEvent(context.Background(), testAddress(0), input)
	require.NoError(t, err)

	require.NotNil(t, event.ImageURL)
	assert.Equal(t, "https://cdn.example.com/events/"+event.ID+"/banner.png", *event.ImageURL)
	assert.Equal(t, "image/png", uploader.lastContentType)
}

func TestCreateEventSurvivesBannerUploadFailure(t *testing.T) {
	uploader := &stubUploader{err: errors.New("bucket unavailable")}
	svc, _ := newEventService(t, uploader)

	input := createEventInput()
	input.ImageData = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	event, err := svc.CreateEvent(context.Background(), testAddress(0), input)
	require.NoError(t, err)
	assert.Nil(t, event.ImageURL)
}

func TestGetEventNotFound(t *testing.T) {
	svc, _ := newEventService(t, nil)

	_, err := svc.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestParticipantCountSeedBaseline(t *testing.T) {
	seeded := testEvent("ev1", 24)
	seeded.SeedParticipants = 16
	svc, registrations := newEventService(t, nil, seeded)

	// Empty ledger: the seed baseline is what listings show.
	event, err := svc.GetEvent(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, 16, event.CurrentParticipants)

	// One real registration and the ledger takes over entirely.
	err = registrations.Create(context.Background(), &models.Registration{
		ID:            "reg1",
		EventID:       "ev1",
		PlayerAddress: wallet.Checksum(testAddress(0)),
		PlayerName:    "Test Player",
		DUPRID:        "DUPR123",
		DUPRRating:    3.5,
		Status:        models.RegistrationPending,
	})
	require.NoError(t, err)

	event, err = svc.GetEvent(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, 1, event.CurrentParticipants)
}

func TestListEventsAttachesCounts(t *testing.T) {
	first := testEvent("ev1", 8)
	first.SeedParticipants = 5
	second := testEvent("ev2", 8)
	svc, registrations := newEventService(t, nil, first, second)

	err := registrations.Create(context.Background(), &models.Registration{
		ID:            "reg1",
		EventID:       "ev2",
		PlayerAddress: wallet.Checksum(testAddress(0)),
		PlayerName:    "Test Player",
		DUPRID:        "DUPR123",
		DUPRRating:    3.5,
		Status:        models.RegistrationPending,
	})
	require.NoError(t, err)

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "ev1", events[0].ID)
	assert.Equal(t, 5, events[0].CurrentParticipants)
	assert.Equal(t, "ev2", events[1].ID)
	assert.Equal(t, 1, events[1].CurrentParticipants)
}

func TestSeedEventsCatalog(t *testing.T) {
	seeds := models.SeedEvents()
	require.Len(t, seeds, 8)

	svc, _ := newEventService(t, nil, seeds...)
	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 8)

	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "Pro Mixed Doubles Round Robin", events[0].Name)
	assert.Equal(t, 16, events[0].CurrentParticipants)
}
