package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Config holds the time-marching parameters of one propagation run.
type Config struct {
	Dt       float64 // step size, seconds
	Duration float64 // total simulated time, seconds; ignored when Steps is set
	Steps    int     // sample count; 0 means derive from Duration
}

// NumSteps returns the number of samples the run will produce.
func (c Config) NumSteps() int {
	if c.Steps > 0 {
		return c.Steps
	}
	return int(c.Duration / c.Dt)
}

// Result is the outcome of a completed run. The trajectory is owned by the
// caller and no longer written to.
type Result struct {
	Trajectory *orbit.Trajectory
	Metrics    map[string]float64
}

// Propagator fills a trajectory by repeatedly applying one stepper to the
// previous sample. The loop is strictly sequential: sample i depends on
// sample i-1, so there is no parallelism across samples.
type Propagator struct {
	field     orbit.Gravity
	stepper   orbit.Stepper
	metrics   []orbit.Metric
	observers []orbit.Observer
}

func New(field orbit.Gravity, stepper orbit.Stepper) *Propagator {
	return &Propagator{
		field:   field,
		stepper: stepper,
	}
}

func (p *Propagator) AddMetric(m orbit.Metric)     { p.metrics = append(p.metrics, m) }
func (p *Propagator) AddObserver(o orbit.Observer) { p.observers = append(p.observers, o) }

// Run seeds sample 0 with s0 and advances the state once per subsequent
// sample. Numeric failures are not recoverable; they surface wrapped in a
// [orbit.StepError] and the partial trajectory is discarded.
func (p *Propagator) Run(ctx context.Context, s0 orbit.State, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	n := cfg.NumSteps()
	if n < 1 {
		return nil, fmt.Errorf("duration %gs shorter than one step of %gs", cfg.Duration, cfg.Dt)
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	traj := orbit.NewTrajectory(n, cfg.Dt)
	traj.R[0] = s0.R
	traj.V[0] = s0.V
	p.observe(s0, 0)

	s := s0
	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := p.stepper.Step(p.field, s, cfg.Dt)
		if err != nil {
			return nil, &orbit.StepError{Step: i, Time: traj.Time(i), Err: err}
		}

		s = next
		traj.R[i] = s.R
		traj.V[i] = s.V
		p.observe(s, traj.Time(i))
	}

	result := &Result{
		Trajectory: traj,
		Metrics:    make(map[string]float64, len(p.metrics)),
	}
	for _, m := range p.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (p *Propagator) observe(s orbit.State, t float64) {
	for _, m := range p.metrics {
		m.Observe(s, t)
	}
	for _, o := range p.observers {
		o.OnStep(s, t)
	}
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}
	if cfg.Steps == 0 && cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", cfg.Duration)
	}
	return nil
}
