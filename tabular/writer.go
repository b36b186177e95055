package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/simplicia/simplex"
)

// WriteTable writes one dimension's table to w in the same shape ReadTable
// consumes: a generated header (label_0 … label_k, weight), then one row
// per stored entry in the store's current order. Aggregate first if the
// dimension may hold duplicate keys; WriteTable writes rows as they stand.
//
// Complexity: O(rows × columns).
func WriteTable(w io.Writer, s *simplex.Store, dim int, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	cw := csv.NewWriter(w)
	cw.Comma = o.Comma

	header := make([]string, dim+2)
	for i := 0; i <= dim; i++ {
		header[i] = fmt.Sprintf("label_%d", i)
	}
	header[dim+1] = "weight"
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("tabular: writing header: %w", err)
	}

	record := make([]string, dim+2)
	for labels, weight := range s.Rows(dim) {
		copy(record, labels)
		record[dim+1] = strconv.FormatFloat(weight, 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("tabular: writing row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteStore writes every populated dimension of s into dir, one file per
// dimension named dimension_<k>.csv, creating dir if needed. Returns the
// paths written, lowest dimension first.
func WriteStore(dir string, s *simplex.Store, opts *Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tabular: %w", err)
	}

	var paths []string
	for k := 0; k <= s.MaxDimension(); k++ {
		if s.Len(k) == 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("dimension_%d.csv", k))
		if err := writeFile(path, s, k, opts); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeFile writes a single dimension table to path.
func writeFile(path string, s *simplex.Store, dim int, opts *Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tabular: %w", err)
	}
	err = WriteTable(f, s, dim, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("tabular: %s: %w", path, err)
	}

	return nil
}
