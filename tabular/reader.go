// Package tabular implements the delimited-table boundary described in
// doc.go.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/simplicia/simplex"
)

// Options configures the delimiter used on both read and write.
type Options struct {
	// Comma is the field separator rune, as in encoding/csv.
	Comma rune
}

// DefaultOptions returns comma-separated tables.
func DefaultOptions() Options {
	return Options{Comma: ','}
}

// ReadTable parses one dimension's table from r: a header row, then rows of
// dimension+1 label columns and a trailing weight column. The dimension is
// inferred from the header's column count and returned alongside the rows.
// Label order within a row is preserved as read; canonicalization happens
// at Store.Insert.
//
// Complexity: O(rows × columns).
func ReadTable(r io.Reader, opts *Options) (int, []simplex.Row, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	cr := csv.NewReader(r)
	cr.Comma = o.Comma

	header, err := cr.Read()
	if err == io.EOF {
		return 0, nil, ErrEmptyTable
	}
	if err != nil {
		return 0, nil, fmt.Errorf("tabular: reading header: %w", err)
	}
	if len(header) < 2 {
		return 0, nil, fmt.Errorf("%w (got %d columns)", ErrTooFewColumns, len(header))
	}
	dim := len(header) - 2

	var rows []simplex.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, fmt.Errorf("tabular: reading row: %w", err)
		}
		w, err := strconv.ParseFloat(record[len(record)-1], 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w (%q)", ErrBadWeight, record[len(record)-1])
		}
		labels := make(simplex.Labels, len(record)-1)
		copy(labels, record[:len(record)-1])
		rows = append(rows, simplex.Row{Labels: labels, Weight: w})
	}

	return dim, rows, nil
}

// ReadStore reads one table file per path and inserts every row into a
// fresh store at the file's inferred dimension. Invalid rows (duplicate
// labels, negative weights) propagate as simplex.ErrInvalidSimplex with the
// offending path attached.
func ReadStore(paths []string, opts *Options) (*simplex.Store, error) {
	s := simplex.NewStore()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("tabular: %w", err)
		}
		dim, rows, err := ReadTable(f, opts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: %s: %w", path, err)
		}
		for _, row := range rows {
			if err := s.Insert(dim, row.Labels, row.Weight); err != nil {
				return nil, fmt.Errorf("tabular: %s: %w", path, err)
			}
		}
	}

	return s, nil
}
