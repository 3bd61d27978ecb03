package integrators

import "github.com/san-kum/orbitlab/internal/orbit"

// Euler is the explicit (forward) Euler stepper. One acceleration
// evaluation per step, first-order accurate: local truncation error O(dt^2),
// global error O(dt). Energy drift over long runs is a property of the
// method; comparing it against RK4 is the point of keeping it.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(field orbit.Gravity, s orbit.State, dt float64) (orbit.State, error) {
	a, err := field.Accel(s.R)
	if err != nil {
		return orbit.State{}, err
	}
	return orbit.State{
		R: s.R.Add(s.V.Mul(dt)),
		V: s.V.Add(a.Mul(dt)),
	}, nil
}
