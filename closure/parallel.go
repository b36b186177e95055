package closure

import (
	"sync"

	"github.com/katalvlaran/simplicia/simplex"
)

// unit is one independent piece of work: a single row whose full face
// closure can be computed in isolation.
type unit struct {
	dim int
	row simplex.Row
}

// closeParallel fans the cascade out per top simplex and fans the results
// back in, per the decomposition in doc.go: every input row above dimension
// 0 closes independently into a private store, the generated faces merge
// into s under a lock, and the final aggregation is the barrier that makes
// the result identical to the serial cascade (linearity: the closed complex
// is the row-wise sum of singleton closures).
func closeParallel(s *simplex.Store, o Options) {
	top := s.MaxDimension()
	if o.PreAggregate {
		for k := 0; k <= top; k++ {
			s.Aggregate(k)
		}
	}

	// Snapshot the work list before any worker mutates s.
	var units []unit
	for k := 1; k <= top; k++ {
		for t, w := range s.Rows(k) {
			units = append(units, unit{dim: k, row: simplex.Row{Labels: t, Weight: w}})
		}
	}

	jobs := make(chan unit)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < o.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				local := simplex.NewStore()
				_ = local.Insert(u.dim, u.row.Labels, u.row.Weight)
				closeSerial(local, Options{PreAggregate: true})

				// Merge generated faces only; the unit's own row is already
				// present in s.
				mu.Lock()
				for d := u.dim - 1; d >= 0; d-- {
					for t, w := range local.Rows(d) {
						_ = s.Insert(d, t, w)
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, u := range units {
		jobs <- u
	}
	close(jobs)
	wg.Wait()

	for k := top; k >= 0; k-- {
		s.Aggregate(k)
	}
}
