package closure

import "errors"

var (
	// ErrNilStore indicates Close was called with a nil store.
	ErrNilStore = errors.New("closure: store must not be nil")
	// ErrBadWorkers indicates Options.Workers is negative.
	ErrBadWorkers = errors.New("closure: workers must be non-negative")
)
