// Package closure implements the top-down expand-and-aggregate pass over a
// simplex store. See doc.go for the contract and complexity discussion.
package closure

import (
	"fmt"

	"github.com/katalvlaran/simplicia/simplex"
)

// Close mutates s into the closed, aggregated complex:
//
//  1. For k from the highest populated dimension down to 1, every row
//     (T, w) at dimension k emits its len(T) faces into dimension k−1,
//     each carrying the parent weight w unmodified. Rows that arrive at
//     k−1 this way are expanded in turn when the k−1 pass runs, so faces
//     propagate transitively to dimension 0.
//  2. Every dimension is aggregated: duplicate canonical keys collapse
//     into one row with the summed weight, ordered by key.
//
// After Close, for every row at dimension k > 0 every one of its k-subsets
// is present at dimension k−1, and each face's weight is its own original
// weight plus the sum of the closed weights of all rows one dimension up
// that contain it.
//
// A nil opts uses DefaultOptions. An empty store is a valid no-op.
//
// Complexity: exponential in the top dimension d — Σ C(d+1, k+1) faces per
// top simplex; with PreAggregate each pass is bounded by the number of
// distinct faces at that dimension. Memory follows the same bound.
func Close(s *simplex.Store, opts *Options) error {
	if s == nil {
		return ErrNilStore
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w (got %d)", ErrBadWorkers, o.Workers)
	}

	if o.Workers > 1 {
		closeParallel(s, o)
	} else {
		closeSerial(s, o)
	}

	return nil
}

// closeSerial runs the cascade in place, one dimension at a time.
func closeSerial(s *simplex.Store, o Options) {
	top := s.MaxDimension()
	for k := top; k >= 1; k-- {
		if o.PreAggregate {
			s.Aggregate(k)
		}
		expandDown(s, k)
	}
	for k := top; k >= 0; k-- {
		s.Aggregate(k)
	}
}

// expandDown emits the immediate faces of every row currently at dimension
// k into dimension k−1. The pass never appends at dimension k itself, so
// ranging the live table is sound.
func expandDown(s *simplex.Store, k int) {
	for t, w := range s.Rows(k) {
		for _, f := range Faces(t) {
			// Faces of a valid row are valid rows; Insert cannot fail here.
			_ = s.Insert(k-1, f, w)
		}
	}
}
