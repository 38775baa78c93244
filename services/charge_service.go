package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
)

const chargeSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ChargeService records stubbed payment charges. Charges always land in
// status "pending": there is no settlement callback yet, and none is faked.
type ChargeService struct {
	charges repositories.ChargeRepository
	metrics metrics.Metrics
	logger  *slog.Logger
}

func NewChargeService(charges repositories.ChargeRepository, m metrics.Metrics, logger *slog.Logger) *ChargeService {
	return &ChargeService{charges: charges, metrics: m, logger: logger}
}

type CreateChargeInput struct {
	Amount           float64 `json:"amount"`
	RecipientAddress string  `json:"recipient_address"`
	RecipientName    string  `json:"recipient_name"`
	EventID          string  `json:"event_id"`
	DUPRID           string  `json:"dupr_id"`
	DUPRRating       float64 `json:"dupr_rating"`
}

// CreateCharge stores a pending charge under a fresh chr_ id. A storage
// failure is surfaced to the caller; no charge id is handed out unless the
// record actually exists.
func (s *ChargeService) CreateCharge(ctx context.Context, input CreateChargeInput) (*models.Charge, error) {
	if input.Amount < 0 {
		return nil, ErrChargeInvalidAmount
	}

	charge := &models.Charge{
		ID:               newChargeID(),
		Amount:           input.Amount,
		RecipientAddress: strings.TrimSpace(input.RecipientAddress),
		RecipientName:    strings.TrimSpace(input.RecipientName),
		EventID:          input.EventID,
		DUPRID:           input.DUPRID,
		DUPRRating:       input.DUPRRating,
		Status:           "pending",
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.charges.Create(ctx, charge); err != nil {
		s.logger.Error("failed to store charge", slog.String("charge_id", charge.ID), slog.Any("error", err))
		return nil, ErrChargeFailed
	}

	s.metrics.IncChargesCreated()
	s.logger.Info("charge created",
		slog.String("charge_id", charge.ID),
		slog.String("event_id", charge.EventID),
		slog.Float64("amount", charge.Amount),
	)
	return charge, nil
}

// newChargeID mirrors the chr_<timestamp>_<random> format used by the
// original checkout integration.
func newChargeID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = chargeSuffixAlphabet[rand.IntN(len(chargeSuffixAlphabet))]
	}
	return fmt.Sprintf("chr_%d_%s", time.Now().UnixMilli(), suffix)
}
