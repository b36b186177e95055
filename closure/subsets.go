package closure

import "github.com/katalvlaran/simplicia/simplex"

// Faces returns every subset of t of size len(t)−1: the immediate faces of
// a simplex, one per dropped position. There are exactly len(t) of them.
// A canonical (sorted) input yields canonical faces, since dropping one
// element preserves order — so the same label set produces the same keys
// no matter which position was dropped or how the parent was encoded.
//
// Dimension-0 simplices (single label) have no faces; Faces returns nil.
//
// Complexity: O(k²) time and memory for a (k+1)-tuple (k+1 faces of k
// labels each).
func Faces(t simplex.Labels) []simplex.Labels {
	if len(t) <= 1 {
		return nil
	}
	out := make([]simplex.Labels, 0, len(t))
	for drop := range t {
		face := make(simplex.Labels, 0, len(t)-1)
		face = append(face, t[:drop]...)
		face = append(face, t[drop+1:]...)
		out = append(out, face)
	}

	return out
}
