package orbit

import "github.com/go-gl/mathgl/mgl64"

// Gravity is the inverse-square acceleration field of a fixed central mass.
// The two constants are captured at construction and never change during a
// run.
type Gravity struct {
	G float64 // gravitational constant, m^3 kg^-1 s^-2
	M float64 // central mass, kg
}

// NewGravity returns the field for gravitational constant g and central
// mass m.
func NewGravity(g, m float64) Gravity {
	return Gravity{G: g, M: m}
}

// Mu returns the standard gravitational parameter G*M, m^3 s^-2.
func (f Gravity) Mu() float64 { return f.G * f.M }

// Accel evaluates the gravitational acceleration at position r:
//
//	a = -(G*M / |r|^3) * r
//
// A zero-norm position has no defined acceleration and returns
// [ErrDegenerateState].
func (f Gravity) Accel(r mgl64.Vec2) (mgl64.Vec2, error) {
	n := r.Len()
	if n == 0 {
		return mgl64.Vec2{}, ErrDegenerateState
	}
	return r.Mul(-f.G * f.M / (n * n * n)), nil
}

// Energy returns the specific orbital energy of s, J/kg. Negative for bound
// orbits.
func (f Gravity) Energy(s State) float64 {
	v := s.V.Len()
	return 0.5*v*v - f.G*f.M/s.R.Len()
}
