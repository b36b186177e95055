// Package simplex defines core types for weighted simplices and their
// per-dimension tables.
package simplex

import (
	"sort"
	"strings"
)

// keySeparator joins labels into a canonical map key. The unit-separator
// byte never occurs in sane category labels, so joined keys collide exactly
// when the label sets are equal.
const keySeparator = "\x1f"

// Labels is the label tuple of a simplex: len(Labels) == dimension+1.
// Canonical form is ascending case-sensitive byte order; every tuple stored
// in a Store is canonical, which reduces set-equality to tuple-equality.
type Labels []string

// Canonicalize returns a sorted copy of l. The receiver is not modified.
// Complexity: O(k log k) for k labels.
func (l Labels) Canonicalize() Labels {
	c := make(Labels, len(l))
	copy(c, l)
	sort.Strings(c)

	return c
}

// Key returns the canonical string key for l. The caller is responsible for
// canonicalizing first; Store methods always do.
// Complexity: O(k) for k labels.
func (l Labels) Key() string {
	return strings.Join(l, keySeparator)
}

// Dimension returns len(l)−1, the simplex dimension this tuple represents.
func (l Labels) Dimension() int {
	return len(l) - 1
}

// Row is one table entry: a canonical label tuple plus its (possibly not
// yet aggregated) weight.
type Row struct {
	Labels Labels
	Weight float64
}

// Table holds every row of one dimension. Duplicate keys are permitted and
// expected between Insert and Aggregate; aggregation collapses them.
type Table []Row
