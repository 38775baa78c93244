package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chargeIDPattern = regexp.MustCompile(`^chr_\d+_[0-9a-z]{6}$`)

type failingChargeRepository struct{}

func (failingChargeRepository) Create(context.Context, *models.Charge) error {
	return errors.New("connection refused")
}

func TestCreateCharge(t *testing.T) {
	svc := NewChargeService(repositories.NewMemoryChargeRepository(), metrics.Noop{}, testLogger())

	charge, err := svc.CreateCharge(context.Background(), CreateChargeInput{
		Amount:           75,
		RecipientAddress: testAddress(0),
		RecipientName:    "Test Player",
		EventID:          "ev1",
		DUPRID:           "DUPR123",
		DUPRRating:       3.5,
	})
	require.NoError(t, err)

	assert.Regexp(t, chargeIDPattern, charge.ID)
	assert.Equal(t, "pending", charge.Status)
	assert.Equal(t, 75.0, charge.Amount)
	assert.False(t, charge.CreatedAt.IsZero())
}

func TestCreateChargeZeroAmount(t *testing.T) {
	svc := NewChargeService(repositories.NewMemoryChargeRepository(), metrics.Noop{}, testLogger())

	charge, err := svc.CreateCharge(context.Background(), CreateChargeInput{Amount: 0})
	require.NoError(t, err)
	assert.Equal(t, "pending", charge.Status)
}

func TestCreateChargeNegativeAmount(t *testing.T) {
	svc := NewChargeService(repositories.NewMemoryChargeRepository(), metrics.Noop{}, testLogger())

	_, err := svc.CreateCharge(context.Background(), CreateChargeInput{Amount: -5})
	assert.ErrorIs(t, err, ErrChargeInvalidAmount)
}

func TestCreateChargeStorageFailure(t *testing.T) {
	svc := NewChargeService(failingChargeRepository{}, metrics.Noop{}, testLogger())

	charge, err := svc.CreateCharge(context.Background(), CreateChargeInput{Amount: 10})
	assert.ErrorIs(t, err, ErrChargeFailed)
	assert.Nil(t, charge, "no charge id is handed out when the record was not stored")
}

func TestChargeIDsAreUnique(t *testing.T) {
	svc := NewChargeService(repositories.NewMemoryChargeRepository(), metrics.Noop{}, testLogger())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		charge, err := svc.CreateCharge(context.Background(), CreateChargeInput{Amount: 1})
		require.NoError(t, err)
		assert.False(t, seen[charge.ID], "duplicate charge id %s", charge.ID)
		seen[charge.ID] = true
	}
}
