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
	ErrRegistrationEventInvalid = errors.New("registration references an unknown event")
	ErrRegistrationCapacity     = errors.New("event has reached max participants")
	ErrRegistrationConflict     = errors.New("player already registered for this event")
)

// RegistrationRepository is the append-only registration ledger. Create must
// perform the capacity check and the insert as one atomic unit so two
// concurrent requests cannot both take the last open slot.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	ListByEvent(ctx context.Context, eventID string) ([]*models.Registration, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

// Create locks the event row for the duration of the transaction, which
// serializes the count-then-insert sequence per event.
func (r *postgresRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants int
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`,
		reg.EventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRegistrationEventInvalid
		}
		return fmt.Errorf("failed to lock event for registration: %w", err)
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`,
		reg.EventID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count registrations: %w", err)
	}
	if count >= maxParticipants {
		return ErrRegistrationCapacity
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO registrations (id, event_id, player_address, player_name, dupr_id, dupr_rating, registered_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		reg.ID,
		reg.EventID,
		reg.PlayerAddress,
		reg.PlayerName,
		reg.DUPRID,
		reg.DUPRRating,
		reg.RegisteredAt,
		reg.Status,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return ErrRegistrationConflict
			case "23503": // foreign_key_violation
				return ErrRegistrationEventInvalid
			}
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*models.Registration, error) {
	query := `
		SELECT id, event_id, player_address, player_name, dupr_id, dupr_rating, registered_at, status
		FROM registrations
		WHERE event_id = $1
		ORDER BY registered_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]*models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.PlayerAddress,
			&reg.PlayerName,
			&reg.DUPRID,
			&reg.DUPRRating,
			&reg.RegisteredAt,
			&reg.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		registrations = append(registrations, &reg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return registrations, nil
}

func (r *postgresRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`,
		eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}
