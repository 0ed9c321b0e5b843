// Package bounds holds the upper bound table that caps the character level
// similarity two texts can reach given the ratio of their lengths.
package bounds

//go:generate go run ../../../cmd/genbounds -out upper_bounds_gen.go

import (
	"errors"
	"fmt"
	"sort"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
)

// ErrInvalidTable is returned when a table breaks its ordering invariants.
var ErrInvalidTable = errors.New("invalid bound table")

// Table is an immutable, validated bound table sorted by ascending size ratio.
type Table struct {
	entries []domain.Bound
}

// New validates entries and returns a Table holding a private copy of them.
func New(entries []domain.Bound) (*Table, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	cp := make([]domain.Bound, len(entries))
	copy(cp, entries)
	return &Table{entries: cp}, nil
}

// Validate checks that entries start with (1, 1), have strictly ascending
// size ratios and non-increasing bounds within [0, 1].
func Validate(entries []domain.Bound) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidTable)
	}
	if entries[0] != (domain.Bound{SizeRatio: 1, MaxSimilarity: 1}) {
		return fmt.Errorf("%w: first entry is %+v, want (1, 1)", ErrInvalidTable, entries[0])
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if !(cur.SizeRatio > prev.SizeRatio) {
			return fmt.Errorf("%w: entry %d size ratio %v does not exceed %v", ErrInvalidTable, i, cur.SizeRatio, prev.SizeRatio)
		}
		if !(cur.MaxSimilarity >= 0 && cur.MaxSimilarity <= prev.MaxSimilarity) {
			return fmt.Errorf("%w: entry %d bound %v is outside [0, %v]", ErrInvalidTable, i, cur.MaxSimilarity, prev.MaxSimilarity)
		}
	}
	return nil
}

var defaultTable = mustNew(defaultEntries)

func mustNew(entries []domain.Bound) *Table {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the generated table shipped with the module.
func Default() *Table {
	return defaultTable
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries.
func (t *Table) Entries() []domain.Bound {
	cp := make([]domain.Bound, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Last returns the entry with the largest size ratio.
func (t *Table) Last() domain.Bound {
	return t.entries[len(t.entries)-1]
}

// Cap returns the bound of the last entry whose size ratio does not exceed
// ratio. ok is false when ratio lies beyond the last entry.
func (t *Table) Cap(ratio float64) (bound float64, ok bool) {
	if t.Last().SizeRatio < ratio {
		return t.Last().MaxSimilarity, false
	}
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].SizeRatio > ratio
	})
	if i == 0 {
		return 1, true
	}
	return t.entries[i-1].MaxSimilarity, true
}
