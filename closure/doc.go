// Package closure expands a store of maximal weighted simplices into its
// full simplicial-complex closure and aggregates the result.
//
// What:
//
//   - Faces enumerates the k+1 faces (one label dropped) of a (k+1)-tuple.
//   - Close processes dimensions top-down: every row at dimension k emits
//     its faces, carrying the parent's full weight, into dimension k−1;
//     rows generated at k−1 are themselves expanded when the k−1 pass runs,
//     so every face of every face reaches dimension 0. A final aggregation
//     collapses duplicate keys per dimension and sums all contributions.
//   - Options tune the pass: PreAggregate collapses each dimension before
//     expanding it, Workers fans the work out per top simplex.
//
// Why:
//
//   - Co-occurrence analysis: observed "teams" of category labels imply
//     every sub-team; closing the complex makes implied sub-teams explicit
//     with correctly summed frequencies.
//   - The closure property is what downstream tooling relies on: every face
//     of every stored simplex is guaranteed present after Close.
//
// Complexity:
//
//	A top simplex of dimension d implies Σ_{k=0..d} C(d+1, k+1) faces —
//	exponential in d. The documented real dataset reaches dimension 22
//	(2^23−1 faces per top simplex), which makes the naive cascade
//	infeasible there; PreAggregate is the practical mitigation, bounding
//	each pass by the number of DISTINCT faces at that dimension rather
//	than the multiplicity-blown row count. Correctness never depends on
//	it: PreAggregate and Workers change the schedule, never the result.
//
// Errors:
//
//   - ErrNilStore: Close was handed a nil store.
//   - ErrBadWorkers: Options.Workers is negative.
//
// See the end-to-end scenario in example_test.go.
package closure
