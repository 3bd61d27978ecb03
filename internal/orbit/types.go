package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Physical constants, SI units.
const (
	// G is the gravitational constant, m^3 kg^-1 s^-2.
	G = 6.6743e-11

	// SunMass is the mass of the Sun, kg.
	SunMass = 1.989e30
)

// State is one (position, velocity) sample. Position in meters, velocity in
// meters per second.
type State struct {
	R mgl64.Vec2
	V mgl64.Vec2
}

// IsValid reports whether the sample contains only finite components.
func (s State) IsValid() bool {
	for _, v := range [...]float64{s.R.X(), s.R.Y(), s.V.X(), s.V.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Radius is the distance from the central mass, meters.
func (s State) Radius() float64 { return s.R.Len() }

// Speed is the magnitude of the velocity, meters per second.
func (s State) Speed() float64 { return s.V.Len() }

// Stepper advances one state by one fixed time increment under the given
// acceleration field.
type Stepper interface {
	Step(field Gravity, s State, dt float64) (State, error)
}

// Metric accumulates a scalar observation over the samples of a run.
type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every stored sample during propagation.
type Observer interface {
	OnStep(s State, t float64)
}

// Trajectory holds the position and velocity buffers of one propagation run,
// indexed by step. Sample i sits at time i*Dt.
type Trajectory struct {
	Dt float64
	R  []mgl64.Vec2
	V  []mgl64.Vec2
}

// NewTrajectory allocates zeroed buffers for n samples at step size dt.
func NewTrajectory(n int, dt float64) *Trajectory {
	return &Trajectory{
		Dt: dt,
		R:  make([]mgl64.Vec2, n),
		V:  make([]mgl64.Vec2, n),
	}
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.R) }

// At returns sample i as a State.
func (t *Trajectory) At(i int) State {
	return State{R: t.R[i], V: t.V[i]}
}

// Time returns the simulated time of sample i, seconds.
func (t *Trajectory) Time(i int) float64 { return float64(i) * t.Dt }

// Radii returns the distance from the central mass at every sample.
func (t *Trajectory) Radii() []float64 {
	d := make([]float64, len(t.R))
	for i, r := range t.R {
		d[i] = r.Len()
	}
	return d
}
