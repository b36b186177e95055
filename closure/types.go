// Package closure defines options for the expand-and-aggregate pass.
package closure

// Options configures Close.
//
// Fields:
//   - PreAggregate — collapse each dimension's duplicate keys immediately
//     before expanding that dimension. Never changes the final tables (the
//     cascade is linear in rows, so summing first and expanding once equals
//     expanding every duplicate and summing later); it bounds each pass by
//     the number of distinct faces at that dimension, which is what makes
//     high-dimensional input tractable. It also subsumes the defensive
//     "aggregate the maximal rows first" step for input that arrives with
//     duplicate encodings of the same set.
//   - Workers — number of goroutines for per-top-simplex fan-out. 0 or 1
//     runs the serial cascade. Every input row is an independent unit of
//     work (its face closure depends on nothing else); the merge and final
//     aggregation form the fan-in barrier. Output is identical to serial.
//
// Example:
//
//	opts := closure.DefaultOptions()
//	opts.Workers = runtime.NumCPU() // large, high-dimensional dataset
//	if err := closure.Close(store, &opts); err != nil {
//	  // handle ErrNilStore / ErrBadWorkers
//	}
type Options struct {
	PreAggregate bool
	Workers      int
}

// DefaultOptions returns the recommended settings: PreAggregate on,
// serial execution.
func DefaultOptions() Options {
	return Options{
		PreAggregate: true,
		Workers:      0,
	}
}
