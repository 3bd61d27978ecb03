package metrics

import "github.com/san-kum/orbitlab/internal/orbit"

// RadialRange records the minimum and maximum distance from the central
// mass seen over a run. Value reports the spread (max - min): near zero for
// a circular orbit, the aphelion-perihelion gap for an ellipse.
type RadialRange struct {
	min     float64
	max     float64
	samples int
}

func NewRadialRange() *RadialRange {
	return &RadialRange{}
}

func (r *RadialRange) Name() string { return "radial_range" }

func (r *RadialRange) Observe(s orbit.State, t float64) {
	d := s.Radius()
	if r.samples == 0 || d < r.min {
		r.min = d
	}
	if r.samples == 0 || d > r.max {
		r.max = d
	}
	r.samples++
}

func (r *RadialRange) Value() float64 { return r.max - r.min }

func (r *RadialRange) Min() float64 { return r.min }
func (r *RadialRange) Max() float64 { return r.max }

func (r *RadialRange) Reset() {
	r.min = 0
	r.max = 0
	r.samples = 0
}
