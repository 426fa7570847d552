package notes

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrSetEmpty            = errors.New("denomination set is empty")
	ErrValueNotPositive    = errors.New("denomination value must be positive")
	ErrValueDuplicated     = errors.New("denomination value duplicated")
	ErrUnknownDenomination = errors.New("unknown denomination")
)

// Denomination is a note face value in whole currency units.
type Denomination int

func (d Denomination) Value() int64 {
	return int64(d)
}

// Set is the fixed, ordered collection of denominations a terminal
// dispenses. Values are kept in descending order.
type Set struct {
	denoms []Denomination
}

func NewSet(values ...int) (Set, error) {
	if len(values) == 0 {
		return Set{}, ErrSetEmpty
	}

	seen := make(map[int]struct{}, len(values))
	denoms := make([]Denomination, 0, len(values))

	for _, v := range values {
		if v <= 0 {
			return Set{}, fmt.Errorf("%w: %d", ErrValueNotPositive, v)
		}

		if _, ok := seen[v]; ok {
			return Set{}, fmt.Errorf("%w: %d", ErrValueDuplicated, v)
		}

		seen[v] = struct{}{}

		denoms = append(denoms, Denomination(v))
	}

	sort.Slice(denoms, func(i, j int) bool {
		return denoms[i] > denoms[j]
	})

	return Set{denoms: denoms}, nil
}

// MustSet is a convenience for fixed literal sets.
func MustSet(values ...int) Set {
	set, err := NewSet(values...)
	if err != nil {
		panic(err)
	}

	return set
}

// Denominations returns the set values in descending order.
func (s Set) Denominations() []Denomination {
	denoms := make([]Denomination, len(s.denoms))
	copy(denoms, s.denoms)

	return denoms
}

// Smallest returns the lowest face value in the set. Every amount the
// terminal dispenses must be a multiple of it.
func (s Set) Smallest() Denomination {
	return s.denoms[len(s.denoms)-1]
}

func (s Set) Contains(d Denomination) bool {
	for _, v := range s.denoms {
		if v == d {
			return true
		}
	}

	return false
}

func (s Set) Len() int {
	return len(s.denoms)
}

// Bundle is a multiset of notes, keyed by denomination. Zero counts are
// not stored.
type Bundle map[Denomination]int

func NewBundle() Bundle {
	return make(Bundle)
}

func (b Bundle) Add(d Denomination, count int) {
	if count == 0 {
		return
	}

	b[d] += count
	if b[d] == 0 {
		delete(b, d)
	}
}

// Merge adds every count of other into the receiver.
func (b Bundle) Merge(other Bundle) {
	for d, count := range other {
		b.Add(d, count)
	}
}

func (b Bundle) Count(d Denomination) int {
	return b[d]
}

func (b Bundle) TotalValue() int64 {
	var total int64

	for d, count := range b {
		total += d.Value() * int64(count)
	}

	return total
}

func (b Bundle) TotalNotes() int {
	var total int

	for _, count := range b {
		total += count
	}

	return total
}

func (b Bundle) Clone() Bundle {
	clone := make(Bundle, len(b))
	for d, count := range b {
		clone[d] = count
	}

	return clone
}
