package integrators

import "github.com/san-kum/orbitlab/internal/orbit"

// RK4 is the classical fourth-order Runge-Kutta stepper. Four acceleration
// evaluations per step, weights 1:2:2:1 scaled by dt/6; local truncation
// error O(dt^5), global error O(dt^4).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (rk *RK4) Step(field orbit.Gravity, s orbit.State, dt float64) (orbit.State, error) {
	half := dt / 2

	k1v, err := field.Accel(s.R)
	if err != nil {
		return orbit.State{}, err
	}
	k1r := s.V

	k2r := s.V.Add(k1v.Mul(half))
	k2v, err := field.Accel(s.R.Add(k1r.Mul(half)))
	if err != nil {
		return orbit.State{}, err
	}

	k3r := s.V.Add(k2v.Mul(half))
	k3v, err := field.Accel(s.R.Add(k2r.Mul(half)))
	if err != nil {
		return orbit.State{}, err
	}

	k4r := s.V.Add(k3v.Mul(dt))
	k4v, err := field.Accel(s.R.Add(k3r.Mul(dt)))
	if err != nil {
		return orbit.State{}, err
	}

	dt6 := dt / 6
	return orbit.State{
		R: s.R.Add(k1r.Add(k2r.Mul(2)).Add(k3r.Mul(2)).Add(k4r).Mul(dt6)),
		V: s.V.Add(k1v.Add(k2v.Mul(2)).Add(k3v.Mul(2)).Add(k4v).Mul(dt6)),
	}, nil
}
