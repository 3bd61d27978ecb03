package sim

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// SweepDt propagates the same initial state once per step size, one goroutine
// per variant. So that endpoints are comparable, the duration is aligned down
// to a whole number of the coarsest steps and every run is sized to land its
// final sample exactly at the aligned duration; step sizes should divide the
// coarsest one evenly. Runs are independent of each other; within each run
// the samples remain strictly sequential. Metrics attached to p are not
// shared into the sweep runs.
func (p *Propagator) SweepDt(ctx context.Context, s0 orbit.State, duration float64, dts []float64) ([]*Result, error) {
	if len(dts) == 0 {
		return nil, fmt.Errorf("no step sizes given")
	}
	coarsest := dts[0]
	for _, dt := range dts[1:] {
		if dt > coarsest {
			coarsest = dt
		}
	}
	if coarsest <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %g", coarsest)
	}
	aligned := math.Floor(duration/coarsest) * coarsest
	if aligned <= 0 {
		return nil, fmt.Errorf("duration %gs shorter than one step of %gs", duration, coarsest)
	}

	results := make([]*Result, len(dts))
	errs := make([]error, len(dts))

	var wg sync.WaitGroup
	for i, dt := range dts {
		wg.Add(1)
		go func(i int, dt float64) {
			defer wg.Done()
			run := New(p.field, p.stepper)
			steps := int(math.Round(aligned/dt)) + 1
			results[i], errs[i] = run.Run(ctx, s0, Config{Dt: dt, Steps: steps})
		}(i, dt)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
