package tabular

import "errors"

var (
	// ErrEmptyTable indicates the input had no header row at all.
	ErrEmptyTable = errors.New("tabular: table must start with a header row")
	// ErrTooFewColumns indicates fewer than two columns: a table needs at
	// least one label column and the weight column.
	ErrTooFewColumns = errors.New("tabular: table needs label columns plus a weight column")
	// ErrBadWeight indicates a trailing weight column that is not a number.
	ErrBadWeight = errors.New("tabular: weight column must be numeric")
)
