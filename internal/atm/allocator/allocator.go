package allocator

import (
	"errors"
	"fmt"

	"github.com/andymarkow/cashpoint/internal/domain/notes"
	"github.com/andymarkow/cashpoint/internal/domain/vault"
)

var ErrDenominationMismatch = errors.New("amount cannot be composed from available notes")

// Allocate composes the requested amount from the vault's stock and, on
// success, deducts the resulting bundle from the vault. On failure the
// vault is left untouched.
//
// The caller must have established amount > 0, divisibility by the
// smallest denomination and amount <= vault.TotalValue() already; those
// conditions have their own user-facing signals and are not re-checked
// here.
//
// The selection runs in two passes over denominations in descending
// order. Pass one is greedy but caps each denomination at
// amount / totalNotes (integer division) notes, a global soft cap that
// spreads large requests across the stock. Pass two re-runs the greedy
// walk without the cap to place whatever remains. The cap is rarely
// binding, but its effect on which notes get picked is part of the
// terminal's observable behavior, so both passes stay as they are.
func Allocate(amount int64, v *vault.Vault) (notes.Bundle, error) {
	counts := v.Counts()

	var totalNotes int
	for _, count := range counts {
		totalNotes += count
	}

	if totalNotes == 0 {
		return nil, fmt.Errorf("%w: vault is empty", ErrDenominationMismatch)
	}

	limit := amount / int64(totalNotes)

	bundle := notes.NewBundle()
	remaining := amount

	// Pass 1: capped greedy.
	for _, d := range v.Set().Denominations() {
		for remaining >= d.Value() && counts[d] > 0 && int64(bundle.Count(d)) < limit {
			bundle.Add(d, 1)
			counts[d]--
			remaining -= d.Value()
		}
	}

	// Pass 2: uncapped fallback for whatever the cap left over.
	if remaining != 0 {
		for _, d := range v.Set().Denominations() {
			for remaining >= d.Value() && counts[d] > 0 {
				bundle.Add(d, 1)
				counts[d]--
				remaining -= d.Value()
			}
		}
	}

	if remaining != 0 {
		return nil, fmt.Errorf("%w: %d short", ErrDenominationMismatch, remaining)
	}

	if err := v.Deduct(bundle); err != nil {
		return nil, fmt.Errorf("vault.Deduct: %w", err)
	}

	return bundle, nil
}
