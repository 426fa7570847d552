package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andymarkow/cashpoint/internal/domain/notes"
	"github.com/andymarkow/cashpoint/internal/domain/vault"
)

func newTestVault(t *testing.T, stock map[notes.Denomination]int) *vault.Vault {
	t.Helper()

	v, err := vault.New(notes.MustSet(20, 10, 5), stock)
	require.NoError(t, err)

	return v
}

func TestAllocateCappedGreedy(t *testing.T) {
	// 26 notes in stock and a request of 100 caps every denomination
	// at 100/26 = 3 notes in the first pass.
	v := newTestVault(t, map[notes.Denomination]int{20: 7, 10: 15, 5: 4})

	bundle, err := Allocate(100, v)
	require.NoError(t, err)

	assert.Equal(t, 3, bundle.Count(20))
	assert.Equal(t, 3, bundle.Count(10))
	assert.Equal(t, 2, bundle.Count(5))
	assert.Equal(t, int64(100), bundle.TotalValue())

	assert.Equal(t, 4, v.Count(20))
	assert.Equal(t, 12, v.Count(10))
	assert.Equal(t, 2, v.Count(5))
}

func TestAllocateLastNote(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{5: 1})

	bundle, err := Allocate(5, v)
	require.NoError(t, err)

	assert.Equal(t, 1, bundle.Count(5))
	assert.Equal(t, 0, v.Count(5))
	assert.True(t, v.IsEmpty())
}

func TestAllocateFallbackPass(t *testing.T) {
	// Nine fives against a request of 45 caps the first pass at
	// 45/9 = 5 notes; the uncapped second pass places the remaining 20.
	v := newTestVault(t, map[notes.Denomination]int{5: 9})

	bundle, err := Allocate(45, v)
	require.NoError(t, err)

	assert.Equal(t, 9, bundle.Count(5))
	assert.True(t, v.IsEmpty())
}

func TestAllocateMismatchRollsBack(t *testing.T) {
	// 60 in twenties cannot compose 50 even though the total covers it.
	v := newTestVault(t, map[notes.Denomination]int{20: 3})

	_, err := Allocate(50, v)
	require.ErrorIs(t, err, ErrDenominationMismatch)

	// Vault untouched on failure.
	assert.Equal(t, 3, v.Count(20))
	assert.Equal(t, int64(60), v.TotalValue())
}

func TestAllocateEmptyVault(t *testing.T) {
	v := newTestVault(t, nil)

	_, err := Allocate(5, v)
	require.ErrorIs(t, err, ErrDenominationMismatch)
}

func TestAllocateConservation(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{20: 7, 10: 15, 5: 4})
	initial := v.TotalValue()

	var dispensed int64

	for _, amount := range []int64{100, 45, 20, 75} {
		bundle, err := Allocate(amount, v)
		require.NoError(t, err)
		require.Equal(t, amount, bundle.TotalValue())

		dispensed += amount
	}

	assert.Equal(t, dispensed, initial-v.TotalValue())
}
