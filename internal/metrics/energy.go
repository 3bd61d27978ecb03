package metrics

import (
	"math"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// EnergyDrift tracks the worst relative deviation of the specific orbital
// energy from its value at the first observed sample. A symptom of
// integrator error: exactly zero for a perfect integrator, grows steadily
// under explicit Euler.
type EnergyDrift struct {
	field   orbit.Gravity
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(field orbit.Gravity) *EnergyDrift {
	return &EnergyDrift{field: field}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s orbit.State, t float64) {
	if s.Radius() == 0 {
		return
	}
	energy := e.field.Energy(s)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}
