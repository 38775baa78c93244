package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinklabs/dinkpass/models"
	"github.com/lib/pq"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventConflict = errors.New("event id already exists")
)

// EventRepository is the event catalog boundary. Events are insert-only:
// no update or delete operations are exposed.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

const eventColumns = `id, name, type, format, skill_level, event_date, start_time, end_time,
	registration_deadline, min_rating, max_rating, entry_fee_usdc, max_participants,
	location, description, image_url, created_by, created_at, seed_participants`

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, name, type, format, skill_level, event_date, start_time, end_time,
			registration_deadline, min_rating, max_rating, entry_fee_usdc, max_participants,
			location, description, image_url, created_by, created_at, seed_participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.Type,
		event.Format,
		event.SkillLevel,
		event.EventDate,
		event.StartTime,
		event.EndTime,
		event.RegistrationDeadline,
		event.MinRating,
		event.MaxRating,
		event.EntryFeeUSDC,
		event.MaxParticipants,
		event.Location,
		event.Description,
		event.ImageURL,
		event.CreatedBy,
		event.CreatedAt,
		event.SeedParticipants,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrEventConflict
		}
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *postgresEventRepository) scanEvent(rowScanner interface {
	Scan(dest ...interface{}) error
}, e *models.Event) error {
	return rowScanner.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Format,
		&e.SkillLevel,
		&e.EventDate,
		&e.StartTime,
		&e.EndTime,
		&e.RegistrationDeadline,
		&e.MinRating,
		&e.MaxRating,
		&e.EntryFeeUSDC,
		&e.MaxParticipants,
		&e.Location,
		&e.Description,
		&e.ImageURL,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.SeedParticipants,
	)
}

func (r *postgresEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at ASC, id ASC`, eventColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := r.scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	var e models.Event
	err := r.scanEvent(r.db.QueryRowContext(ctx, query, id), &e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}
