// Package simplicia computes the simplicial-complex closure of a weighted
// hypergraph — from maximal "top" simplices down to single labels, with
// duplicate faces merged and weights summed along the way.
//
// 🚀 What is simplicia?
//
//	A small, in-memory library that turns observed co-occurrence sets into
//	a fully closed, aggregated simplicial complex:
//		• Simplex Store: per-dimension tables of (label tuple, weight) rows
//		• Face expansion: every (k+1)-tuple yields its k+1 faces, top-down
//		• Aggregation: duplicate faces collapse into one row, weights summed
//		• Flat-file I/O: read and write per-dimension delimited tables
//		• CLI: close a whole dataset of tables in one command
//
// ✨ Why choose simplicia?
//
//   - Minimal API – a Store, a Close call, and plain rows in/out
//   - Deterministic – canonical label order makes set-equality exact and
//     output order stable regardless of input order
//   - Pure Go core – the algorithm itself depends on nothing but stdlib
//   - Scales out – optional per-simplex fan-out for very high dimensions
//
// Under the hood, everything is organized under four subpackages:
//
//	simplex/ — Store, Table and Row types; insertion, aggregation, iteration
//	closure/ — face enumeration and the top-down expand-and-aggregate pass
//	tabular/ — delimited (CSV-shaped) table readers and writers
//	cmd/     — the simplicia command-line tool
//
// Quick ASCII example:
//
//	    {Danish, Dutch, German} : 2        (one observed team, dimension 2)
//	          │
//	    {Danish,Dutch} {Danish,German} {Dutch,German}   each : 2
//	          │
//	    {Danish} {Dutch} {German}          each : 4 (two pairs apiece)
//
//	a single weighted triangle closed down to its vertices.
//
// Dive into the examples/ directory for full scenarios, and see each
// subpackage's doc.go for complexity notes and error contracts.
//
//	go get github.com/katalvlaran/simplicia
package simplicia
