// Package simplex implements the per-dimension simplex store described in
// doc.go: append-only insertion, deferred aggregation, lazy iteration.
package simplex

import (
	"fmt"
	"iter"
	"sort"
)

// Store is a dimension-indexed collection of Tables. The zero number of
// dimensions grows on demand; a dimension that was never inserted into
// behaves as an empty table everywhere.
//
// Store is not safe for concurrent mutation; the closure package serializes
// access where it fans out.
type Store struct {
	tables []Table
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Insert validates and appends one row at the given dimension. The labels
// are canonicalized (sorted copy) before storage; the caller's slice is
// never retained or modified. Duplicate keys are NOT collapsed here — call
// Aggregate for that.
//
// Contract: dim ≥ 0, len(labels) == dim+1, labels pairwise distinct,
// weight ≥ 0. Any violation returns an error matching ErrInvalidSimplex and
// leaves the store untouched.
//
// Complexity: O(k log k) for k = dim+1 labels.
func (s *Store) Insert(dim int, labels []string, weight float64) error {
	if dim < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeDimension, dim)
	}
	if len(labels) != dim+1 {
		return fmt.Errorf("%w (dimension %d needs %d labels, got %d)",
			ErrArityMismatch, dim, dim+1, len(labels))
	}
	if weight < 0 {
		return fmt.Errorf("%w (got %g)", ErrNegativeWeight, weight)
	}
	canon := Labels(labels).Canonicalize()
	// Sorted tuples expose duplicates as adjacent equals.
	for i := 1; i < len(canon); i++ {
		if canon[i] == canon[i-1] {
			return fmt.Errorf("%w (label %q repeats)", ErrDuplicateLabel, canon[i])
		}
	}

	s.grow(dim)
	s.tables[dim] = append(s.tables[dim], Row{Labels: canon, Weight: weight})

	return nil
}

// Aggregate groups all rows at dim by canonical key and replaces them with
// one row per unique key whose weight is the sum of all contributions.
// Surviving rows are ordered by key, so the result is deterministic
// regardless of insertion order. Aggregating twice is a no-op; aggregating
// an absent or empty dimension is a no-op.
//
// Complexity: O(R·k) to group R rows of arity k, plus O(U log U) to sort
// the U unique keys.
func (s *Store) Aggregate(dim int) {
	if dim < 0 || dim >= len(s.tables) || len(s.tables[dim]) == 0 {
		return
	}
	sums := make(map[string]float64, len(s.tables[dim]))
	tuples := make(map[string]Labels, len(s.tables[dim]))
	for _, r := range s.tables[dim] {
		k := r.Labels.Key()
		sums[k] += r.Weight
		if _, seen := tuples[k]; !seen {
			tuples[k] = r.Labels
		}
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Table, 0, len(keys))
	for _, k := range keys {
		out = append(out, Row{Labels: tuples[k], Weight: sums[k]})
	}
	s.tables[dim] = out
}

// Rows returns a lazy sequence over the rows currently stored at dim. The
// sequence is finite and restartable: each range walks the table as it
// stands when the range begins. Yielded Labels are the store's own tuples;
// treat them as read-only.
//
// Complexity: O(1) per yielded row.
func (s *Store) Rows(dim int) iter.Seq2[Labels, float64] {
	return func(yield func(Labels, float64) bool) {
		if dim < 0 || dim >= len(s.tables) {
			return
		}
		for _, r := range s.tables[dim] {
			if !yield(r.Labels, r.Weight) {
				return
			}
		}
	}
}

// Len reports the number of rows currently stored at dim (0 for absent
// dimensions).
func (s *Store) Len(dim int) int {
	if dim < 0 || dim >= len(s.tables) {
		return 0
	}

	return len(s.tables[dim])
}

// MaxDimension returns the highest dimension holding at least one row, or
// −1 for an empty store.
func (s *Store) MaxDimension() int {
	for d := len(s.tables) - 1; d >= 0; d-- {
		if len(s.tables[d]) > 0 {
			return d
		}
	}

	return -1
}

// Weight returns the total weight currently stored under the canonical key
// of labels at dim, summed across duplicate rows, and whether any row with
// that key exists. Works the same before and after aggregation.
//
// Complexity: O(R·k) over the dimension's rows.
func (s *Store) Weight(dim int, labels []string) (float64, bool) {
	want := Labels(labels).Canonicalize().Key()
	sum, found := 0.0, false
	for l, w := range s.Rows(dim) {
		if l.Key() == want {
			sum += w
			found = true
		}
	}

	return sum, found
}

// Clone returns a deep copy of the store: mutating either copy never
// affects the other.
// Complexity: O(total rows × arity).
func (s *Store) Clone() *Store {
	c := &Store{tables: make([]Table, len(s.tables))}
	for d, t := range s.tables {
		if len(t) == 0 {
			continue
		}
		ct := make(Table, len(t))
		for i, r := range t {
			labels := make(Labels, len(r.Labels))
			copy(labels, r.Labels)
			ct[i] = Row{Labels: labels, Weight: r.Weight}
		}
		c.tables[d] = ct
	}

	return c
}

// grow extends the table slice so that index dim is addressable.
func (s *Store) grow(dim int) {
	for len(s.tables) <= dim {
		s.tables = append(s.tables, nil)
	}
}
