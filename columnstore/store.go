package columnstore

import (
	"errors"
	"fmt"

	"github.com/lophi-data/lophi/internal/collision"
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/internal/hash"
)

// Store is an ordered collection of same-length columns: the Column Store
// of spec.md §2/§3. Column order is preserved for deterministic report
// output (spec.md §5 "Ordering").
//
// Column lookup is hash-indexed for the common case; the tracker also
// detects the rare case where two distinct names hash to the same 64-bit
// key, in which case lookups for that hash fall back to a linear scan
// among the colliding positions instead of silently shadowing one column
// with another.
type Store struct {
	cols    []*Column
	index   map[uint64][]int // name hash -> positions in cols sharing that hash
	tracker *collision.Tracker
	rows    int
}

// New builds a Store from columns, all of which must share the same row
// count. Duplicate column names are rejected.
func New(cols ...*Column) (*Store, error) {
	s := &Store{index: make(map[uint64][]int, len(cols)), tracker: collision.NewTracker()}
	for _, c := range cols {
		if err := s.append(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) append(c *Column) error {
	if len(s.cols) > 0 && c.Len() != s.rows {
		return fmt.Errorf("%w: column %q has %d rows, store has %d", errs.ErrLengthMismatch, c.Name, c.Len(), s.rows)
	}
	if len(s.cols) == 0 {
		s.rows = c.Len()
	}

	h := hash.ID(c.Name)
	if err := s.tracker.TrackName(c.Name, h); err != nil {
		if errors.Is(err, errs.ErrDuplicateName) {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateName, c.Name)
		}

		return err
	}

	s.index[h] = append(s.index[h], len(s.cols))
	s.cols = append(s.cols, c)

	return nil
}

// columnAt resolves name to its position, taking the linear-scan fallback
// over the hash's positions once any two distinct names in the store have
// collided.
func (s *Store) columnAt(name string) (int, bool) {
	h := hash.ID(name)
	positions, ok := s.index[h]
	if !ok {
		return 0, false
	}
	if len(positions) == 1 && !s.tracker.HasCollision() {
		return positions[0], true
	}

	for _, pos := range positions {
		if s.cols[pos].Name == name {
			return pos, true
		}
	}

	return 0, false
}

// Rows returns the row count shared by all columns.
func (s *Store) Rows() int {
	return s.rows
}

// NumCols returns the number of columns currently in the store.
func (s *Store) NumCols() int {
	return len(s.cols)
}

// Names returns column names in store order.
func (s *Store) Names() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Name
	}

	return out
}

// Columns returns the columns in store order. The returned slice must not
// be mutated by the caller.
func (s *Store) Columns() []*Column {
	return s.cols
}

// Column returns the named column, or ErrColumnNotFound.
func (s *Store) Column(name string) (*Column, error) {
	idx, ok := s.columnAt(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return s.cols[idx], nil
}

// Has reports whether the named column exists.
func (s *Store) Has(name string) bool {
	_, ok := s.columnAt(name)

	return ok
}

// Drop returns a new Store with the named columns removed. Names not
// present are ignored, matching the controller's "drop set may reference a
// column another stage already dropped" usage (spec.md §4.4 per-stage
// pruning).
func (s *Store) Drop(names ...string) *Store {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}

	kept := make([]*Column, 0, len(s.cols))
	for _, c := range s.cols {
		if _, ok := drop[c.Name]; ok {
			continue
		}
		kept = append(kept, c)
	}

	out, _ := New(kept...) // lengths/names already validated by construction

	return out
}

// Keep returns a new Store containing only the named columns, in the order
// requested.
func (s *Store) Keep(names ...string) (*Store, error) {
	kept := make([]*Column, 0, len(names))
	for _, n := range names {
		c, err := s.Column(n)
		if err != nil {
			return nil, err
		}
		kept = append(kept, c)
	}

	return New(kept...)
}

// SelectRows materializes a new Store containing only the given row
// indices, preserving column order. This is the "physical materialisation"
// step of spec.md §3's Lifecycle, used before correlation and before final
// output.
func (s *Store) SelectRows(indices []int) *Store {
	selected := make([]*Column, len(s.cols))
	for i, c := range s.cols {
		selected[i] = c.Select(indices)
	}

	out, _ := New(selected...) // names/lengths already validated by construction

	return out
}

// NumericNames returns the names of columns whose LogicalType is numeric,
// in store order, per spec.md §3's numeric/categorical partition.
func (s *Store) NumericNames() []string {
	var out []string
	for _, c := range s.cols {
		if c.Type.IsNumeric() {
			out = append(out, c.Name)
		}
	}

	return out
}

// CategoricalNames returns the names of columns treated as categorical
// (Utf8, or Int64 — low-cardinality is a binning-time property of the
// *values*, not the declared type, so the IV engine decides per spec.md
// §4.2 rather than this accessor).
func (s *Store) CategoricalNames() []string {
	var out []string
	for _, c := range s.cols {
		if c.Type == Utf8 || c.Type == Int64 {
			out = append(out, c.Name)
		}
	}

	return out
}
