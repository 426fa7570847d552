package receipts

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andymarkow/cashpoint/internal/domain/notes"
)

var (
	ErrAmountNotPositive = errors.New("receipt amount must be positive")
	ErrBundleMismatch    = errors.New("receipt bundle value does not match amount")
)

// Receipt records one successful withdrawal.
type Receipt struct {
	id          string
	amount      int64
	bundle      notes.Bundle
	processedAt time.Time
}

func NewReceipt(amount int64, bundle notes.Bundle) (*Receipt, error) {
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}

	if bundle.TotalValue() != amount {
		return nil, ErrBundleMismatch
	}

	return &Receipt{
		id:          uuid.NewString(),
		amount:      amount,
		bundle:      bundle.Clone(),
		processedAt: time.Now(),
	}, nil
}

func (r *Receipt) ID() string {
	return r.id
}

func (r *Receipt) Amount() int64 {
	return r.amount
}

func (r *Receipt) Bundle() notes.Bundle {
	return r.bundle.Clone()
}

func (r *Receipt) ProcessedAt() time.Time {
	return r.processedAt
}
