package tabular_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/simplicia/closure"
	"github.com/katalvlaran/simplicia/simplex"
	"github.com/katalvlaran/simplicia/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadTable_InfersDimension verifies the dimension comes from the
// column count: three label columns + weight means dimension 2.
func TestReadTable_InfersDimension(t *testing.T) {
	in := "lang_a,lang_b,lang_c,frequency\nDanish,Dutch,German,2\nDutch,German,Swedish,1\n"

	dim, rows, err := tabular.ReadTable(strings.NewReader(in), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, dim)
	require.Len(t, rows, 2)
	assert.Equal(t, simplex.Labels{"Danish", "Dutch", "German"}, rows[0].Labels)
	assert.Equal(t, 2.0, rows[0].Weight)
}

// TestReadTable_EmptyInput verifies a file without a header errors.
func TestReadTable_EmptyInput(t *testing.T) {
	_, _, err := tabular.ReadTable(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, tabular.ErrEmptyTable)
}

// TestReadTable_TooFewColumns verifies a weight-only table is rejected.
func TestReadTable_TooFewColumns(t *testing.T) {
	_, _, err := tabular.ReadTable(strings.NewReader("frequency\n3\n"), nil)
	assert.ErrorIs(t, err, tabular.ErrTooFewColumns)
}

// TestReadTable_BadWeight verifies a non-numeric trailing column errors.
func TestReadTable_BadWeight(t *testing.T) {
	in := "lang,frequency\nDanish,many\n"

	_, _, err := tabular.ReadTable(strings.NewReader(in), nil)
	assert.ErrorIs(t, err, tabular.ErrBadWeight)
}

// TestReadTable_RaggedRow verifies rows with a different column count than
// the header surface as a parse error.
func TestReadTable_RaggedRow(t *testing.T) {
	in := "lang_a,lang_b,frequency\nDanish,2\n"

	_, _, err := tabular.ReadTable(strings.NewReader(in), nil)
	assert.Error(t, err)
}

// TestReadTable_CustomDelimiter verifies Options.Comma is honored.
func TestReadTable_CustomDelimiter(t *testing.T) {
	in := "lang_a;lang_b;frequency\nDanish;Dutch;4\n"
	opts := tabular.Options{Comma: ';'}

	dim, rows, err := tabular.ReadTable(strings.NewReader(in), &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, dim)
	require.Len(t, rows, 1)
	assert.Equal(t, 4.0, rows[0].Weight)
}

// TestWriteTable_Shape verifies the generated header and row layout.
func TestWriteTable_Shape(t *testing.T) {
	s := simplex.NewStore()
	require.NoError(t, s.Insert(1, []string{"Dutch", "Danish"}, 3))
	s.Aggregate(1)

	var buf bytes.Buffer
	require.NoError(t, tabular.WriteTable(&buf, s, 1, nil))

	assert.Equal(t, "label_0,label_1,weight\nDanish,Dutch,3\n", buf.String())
}

// TestRoundTrip_Store closes a small dataset and round-trips every
// dimension through files, recovering identical tables.
func TestRoundTrip_Store(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, filepath.Join(dir, "teams.csv"),
		"lang_a,lang_b,lang_c,frequency\nDanish,Dutch,German,2\n")
	writeInput(t, filepath.Join(dir, "pairs.csv"),
		"lang_a,lang_b,frequency\nDanish,German,1\n")

	s, err := tabular.ReadStore([]string{
		filepath.Join(dir, "teams.csv"),
		filepath.Join(dir, "pairs.csv"),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, closure.Close(s, nil))

	outDir := filepath.Join(dir, "closed")
	paths, err := tabular.WriteStore(outDir, s, nil)
	require.NoError(t, err)
	require.Len(t, paths, 3, "dimensions 0..2 all populated")

	back, err := tabular.ReadStore(paths, nil)
	require.NoError(t, err)
	for k := 0; k <= 2; k++ {
		assert.Equal(t, s.Len(k), back.Len(k), "dimension %d row count", k)
		for labels, w := range s.Rows(k) {
			got, ok := back.Weight(k, labels)
			require.True(t, ok, "missing %v at dimension %d", labels, k)
			assert.Equal(t, w, got)
		}
	}
}

// TestReadStore_InvalidRow verifies store-contract violations keep their
// sentinel through the file path.
func TestReadStore_InvalidRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	writeInput(t, path, "lang_a,lang_b,frequency\nDanish,Danish,1\n")

	_, err := tabular.ReadStore([]string{path}, nil)
	assert.ErrorIs(t, err, simplex.ErrInvalidSimplex)
	assert.Contains(t, err.Error(), "bad.csv", "error names the offending file")
}

// writeInput drops a fixture file for ReadStore tests.
func writeInput(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
