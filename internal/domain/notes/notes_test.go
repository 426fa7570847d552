package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr error
	}{
		{
			name:   "descending input",
			values: []int{20, 10, 5},
		},
		{
			name:   "unordered input",
			values: []int{5, 20, 10},
		},
		{
			name:    "empty input",
			values:  nil,
			wantErr: ErrSetEmpty,
		},
		{
			name:    "zero value",
			values:  []int{20, 0},
			wantErr: ErrValueNotPositive,
		},
		{
			name:    "negative value",
			values:  []int{20, -5},
			wantErr: ErrValueNotPositive,
		},
		{
			name:    "duplicate value",
			values:  []int{20, 10, 20},
			wantErr: ErrValueDuplicated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewSet(tt.values...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []Denomination{20, 10, 5}, set.Denominations())
			assert.Equal(t, Denomination(5), set.Smallest())
		})
	}
}

func TestSetContains(t *testing.T) {
	set := MustSet(20, 10, 5)

	assert.True(t, set.Contains(10))
	assert.False(t, set.Contains(50))
}

func TestBundleArithmetic(t *testing.T) {
	b := NewBundle()
	b.Add(20, 3)
	b.Add(5, 2)

	assert.Equal(t, int64(70), b.TotalValue())
	assert.Equal(t, 5, b.TotalNotes())
	assert.Equal(t, 3, b.Count(20))
	assert.Equal(t, 0, b.Count(10))
}

func TestBundleMerge(t *testing.T) {
	b := NewBundle()
	b.Add(20, 1)

	other := NewBundle()
	other.Add(20, 2)
	other.Add(10, 1)

	b.Merge(other)

	assert.Equal(t, 3, b.Count(20))
	assert.Equal(t, 1, b.Count(10))
	assert.Equal(t, int64(70), b.TotalValue())
}

func TestBundleAddZeroNotStored(t *testing.T) {
	b := NewBundle()
	b.Add(20, 0)

	assert.Empty(t, b)
}

func TestBundleClone(t *testing.T) {
	b := NewBundle()
	b.Add(10, 4)

	clone := b.Clone()
	clone.Add(10, 1)

	assert.Equal(t, 4, b.Count(10))
	assert.Equal(t, 5, clone.Count(10))
}
