// Package simplex provides the weighted simplex store: per-dimension tables
// of (label tuple, weight) rows with canonical set semantics.
//
// What:
//
//   - Labels is an unordered set of distinct string labels; a tuple of k+1
//     labels is a simplex of dimension k.
//   - Canonical form sorts labels in case-sensitive byte order, so that
//     {"Dutch","Danish"} and {"Danish","Dutch"} are the same key.
//   - Store holds one Table per dimension. Insert appends rows without
//     deduplicating; Aggregate collapses duplicate keys by summing weights.
//   - Rows yields a lazy, restartable sequence over a dimension's rows.
//
// Why:
//
//   - Observed co-occurrence data ("teams" of category labels) arrives with
//     duplicates and arbitrary label order; canonicalization plus deferred
//     aggregation makes merging exact and order-independent.
//   - The closure package fills the store downward with generated faces and
//     relies on the same aggregation step to sum all contributions.
//
// Complexity:
//
//   - Insert:     O(k log k) for a dimension-k simplex (canonical sort).
//   - Aggregate:  O(R·k + U·k log U) for R rows, U unique keys at that
//     dimension (group by key, then sort survivors for stable output).
//   - Rows:       O(1) per yielded row; no allocation per restart.
//
// Errors:
//
//   - ErrInvalidSimplex: base sentinel for every Insert contract violation.
//   - ErrNegativeDimension, ErrArityMismatch, ErrDuplicateLabel,
//     ErrNegativeWeight: specific cases, each matching ErrInvalidSimplex
//     via errors.Is. Insert never mutates the store on error.
package simplex
