package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinklabs/dinkpass/models"
	"github.com/lib/pq"
)

var ErrChargeConflict = errors.New("charge id already exists")

// ChargeRepository stores stubbed payment records. Insert-only; there is no
// settlement path that would update a charge.
type ChargeRepository interface {
	Create(ctx context.Context, charge *models.Charge) error
}

type postgresChargeRepository struct {
	db *sql.DB
}

func NewPostgresChargeRepository(db *sql.DB) ChargeRepository {
	return &postgresChargeRepository{db: db}
}

func (r *postgresChargeRepository) Create(ctx context.Context, charge *models.Charge) error {
	query := `
		INSERT INTO charges (id, amount, recipient_address, recipient_name, event_id, dupr_id, dupr_rating, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		charge.ID,
		charge.Amount,
		charge.RecipientAddress,
		charge.RecipientName,
		charge.EventID,
		charge.DUPRID,
		charge.DUPRRating,
		charge.Status,
		charge.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrChargeConflict
		}
		return fmt.Errorf("failed to create charge: %w", err)
	}
	return nil
}
