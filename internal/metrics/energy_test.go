package metrics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/orbit"
)

func TestEnergyDriftConstant(t *testing.T) {
	field := orbit.NewGravity(1.0, 1.0)
	m := NewEnergyDrift(field)

	s := orbit.State{R: mgl64.Vec2{1, 0}, V: mgl64.Vec2{0, 1}}
	for i := 0; i < 5; i++ {
		m.Observe(s, float64(i))
	}

	if m.Value() != 0 {
		t.Errorf("repeating the same state must show zero drift, got %e", m.Value())
	}
}

func TestEnergyDriftDetectsChange(t *testing.T) {
	field := orbit.NewGravity(1.0, 1.0)
	m := NewEnergyDrift(field)

	// E = -0.5 at the circular state, -0.375 once the speed rises.
	m.Observe(orbit.State{R: mgl64.Vec2{1, 0}, V: mgl64.Vec2{0, 1}}, 0)
	m.Observe(orbit.State{R: mgl64.Vec2{1, 0}, V: mgl64.Vec2{0, math.Sqrt(1.25)}}, 1)

	want := 0.25
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("drift: got %g, want %g", m.Value(), want)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("Reset did not clear the drift")
	}
}

func TestEnergyDriftSkipsDegenerateSamples(t *testing.T) {
	field := orbit.NewGravity(1.0, 1.0)
	m := NewEnergyDrift(field)

	m.Observe(orbit.State{}, 0) // zero radius, ignored
	m.Observe(orbit.State{R: mgl64.Vec2{1, 0}, V: mgl64.Vec2{0, 1}}, 1)

	if m.Value() != 0 {
		t.Errorf("first finite sample should become the baseline, got drift %e", m.Value())
	}
}

func TestRadialRange(t *testing.T) {
	m := NewRadialRange()

	m.Observe(orbit.State{R: mgl64.Vec2{3, 4}}, 0) // r = 5
	m.Observe(orbit.State{R: mgl64.Vec2{2, 0}}, 1) // r = 2
	m.Observe(orbit.State{R: mgl64.Vec2{0, 7}}, 2) // r = 7

	if m.Min() != 2 || m.Max() != 7 {
		t.Errorf("min/max: got %g/%g, want 2/7", m.Min(), m.Max())
	}
	if m.Value() != 5 {
		t.Errorf("range: got %g, want 5", m.Value())
	}

	m.Reset()
	m.Observe(orbit.State{R: mgl64.Vec2{1, 0}}, 0)
	if m.Min() != 1 || m.Max() != 1 {
		t.Errorf("after reset min/max should track the single sample, got %g/%g", m.Min(), m.Max())
	}
}
