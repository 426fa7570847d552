package vault

import (
	"errors"
	"fmt"
	"sync"

	"github.com/andymarkow/cashpoint/internal/domain/notes"
)

var (
	ErrNegativeCount     = errors.New("note count is negative")
	ErrInsufficientNotes = errors.New("insufficient notes of denomination")
)

// Vault holds the terminal's physical note inventory. Counts only ever
// decrease: a successful allocation deducts notes, and no restocking
// operation exists.
type Vault struct {
	set    notes.Set
	counts map[notes.Denomination]int
	mu     sync.Mutex
}

func New(set notes.Set, stock map[notes.Denomination]int) (*Vault, error) {
	counts := make(map[notes.Denomination]int, set.Len())

	for d, count := range stock {
		if !set.Contains(d) {
			return nil, fmt.Errorf("%w: %d", notes.ErrUnknownDenomination, d)
		}

		if count < 0 {
			return nil, fmt.Errorf("%w: %d x %d", ErrNegativeCount, d, count)
		}

		counts[d] = count
	}

	return &Vault{set: set, counts: counts}, nil
}

func (v *Vault) Set() notes.Set {
	return v.set
}

func (v *Vault) TotalValue() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	var total int64

	for d, count := range v.counts {
		total += d.Value() * int64(count)
	}

	return total
}

func (v *Vault) TotalNotes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	var total int

	for _, count := range v.counts {
		total += count
	}

	return total
}

func (v *Vault) IsEmpty() bool {
	return v.TotalValue() == 0
}

func (v *Vault) HasAtLeast(amount int64) bool {
	return amount <= v.TotalValue()
}

func (v *Vault) Count(d notes.Denomination) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.counts[d]
}

// Counts returns a snapshot of the per-denomination counts.
func (v *Vault) Counts() map[notes.Denomination]int {
	v.mu.Lock()
	defer v.mu.Unlock()

	counts := make(map[notes.Denomination]int, len(v.counts))
	for d, count := range v.counts {
		counts[d] = count
	}

	return counts
}

// Take removes a single note of the given denomination.
func (v *Vault) Take(d notes.Denomination) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.counts[d] <= 0 {
		return fmt.Errorf("%w: %d", ErrInsufficientNotes, d)
	}

	v.counts[d]--

	return nil
}

// Deduct removes a whole bundle from the vault, all or nothing. It is
// how a successful allocation commits its result.
func (v *Vault) Deduct(bundle notes.Bundle) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for d, count := range bundle {
		if v.counts[d] < count {
			return fmt.Errorf("%w: %d", ErrInsufficientNotes, d)
		}
	}

	for d, count := range bundle {
		v.counts[d] -= count
	}

	return nil
}
