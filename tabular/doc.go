// Package tabular reads and writes the flat delimited tables that carry a
// simplex store across the process boundary.
//
// What:
//
//   - A table file holds one dimension: a header row, then one row per
//     simplex with dimension+1 label columns and a trailing weight column.
//     The column count implies the dimension (columns − 2).
//   - ReadTable / WriteTable work on one io.Reader / io.Writer.
//   - ReadStore / WriteStore move a whole store: one file per dimension.
//
// Why:
//
//   - The closure core consumes and produces abstract tables; this package
//     is the boundary collaborator that maps them onto the flat files the
//     source data ships in, and nothing more (no other persistence format
//     is supported).
//
// Errors:
//
//   - ErrEmptyTable: input had no header row.
//   - ErrTooFewColumns: a table needs at least one label column plus the
//     weight column.
//   - ErrBadWeight: trailing column failed to parse as a number.
//   - Ragged rows surface as *csv.ParseError from the underlying reader;
//     invalid label sets surface as simplex.ErrInvalidSimplex from ReadStore.
package tabular
