// Package orbit provides the core primitives for two-body orbit propagation.
//
// The package defines the fundamental types shared by the integration
// pipeline:
//
//   - [State]: one (position, velocity) sample in SI units
//   - [Gravity]: the central inverse-square acceleration field
//   - [Stepper]: fixed-step numerical integrator interface
//   - [Trajectory]: the discrete-time position/velocity buffers of a run
//
// All quantities are SI base units (meters, seconds, kilograms). Motion is
// planar; the visualization layer places it on the z=0 plane.
//
// # Example
//
//	field := orbit.NewGravity(orbit.G, orbit.SunMass)
//	prop := sim.New(field, integrators.NewRK4())
//	result, _ := prop.Run(ctx, s0, cfg)
//
// # Thread Safety
//
// A Trajectory is written by exactly one Propagator while a run is in
// progress and is read-only afterwards; any number of readers may share a
// finished trajectory without locking.
package orbit
