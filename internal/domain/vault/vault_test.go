package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andymarkow/cashpoint/internal/domain/notes"
)

func newTestVault(t *testing.T, stock map[notes.Denomination]int) *Vault {
	t.Helper()

	v, err := New(notes.MustSet(20, 10, 5), stock)
	require.NoError(t, err)

	return v
}

func TestNew(t *testing.T) {
	t.Run("rejects unknown denomination", func(t *testing.T) {
		_, err := New(notes.MustSet(20, 10, 5), map[notes.Denomination]int{50: 1})
		require.ErrorIs(t, err, notes.ErrUnknownDenomination)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		_, err := New(notes.MustSet(20, 10, 5), map[notes.Denomination]int{20: -1})
		require.ErrorIs(t, err, ErrNegativeCount)
	})
}

func TestTotals(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{20: 7, 10: 15, 5: 4})

	assert.Equal(t, int64(310), v.TotalValue())
	assert.Equal(t, 26, v.TotalNotes())
	assert.False(t, v.IsEmpty())
	assert.True(t, v.HasAtLeast(310))
	assert.False(t, v.HasAtLeast(311))
}

func TestEmptyVault(t *testing.T) {
	v := newTestVault(t, nil)

	assert.True(t, v.IsEmpty())
	assert.False(t, v.HasAtLeast(5))
}

func TestTake(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{5: 1})

	require.NoError(t, v.Take(5))
	assert.Equal(t, 0, v.Count(5))

	require.ErrorIs(t, v.Take(5), ErrInsufficientNotes)
	require.ErrorIs(t, v.Take(20), ErrInsufficientNotes)
}

func TestDeduct(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{20: 2, 10: 1})

	bundle := notes.NewBundle()
	bundle.Add(20, 1)
	bundle.Add(10, 1)

	require.NoError(t, v.Deduct(bundle))
	assert.Equal(t, 1, v.Count(20))
	assert.Equal(t, 0, v.Count(10))
}

func TestDeductAllOrNothing(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{20: 2, 10: 1})

	bundle := notes.NewBundle()
	bundle.Add(20, 1)
	bundle.Add(10, 2)

	require.ErrorIs(t, v.Deduct(bundle), ErrInsufficientNotes)

	// Nothing deducted on failure.
	assert.Equal(t, 2, v.Count(20))
	assert.Equal(t, 1, v.Count(10))
}

func TestCountsIsSnapshot(t *testing.T) {
	v := newTestVault(t, map[notes.Denomination]int{20: 2})

	counts := v.Counts()
	counts[20] = 0

	assert.Equal(t, 2, v.Count(20))
}
