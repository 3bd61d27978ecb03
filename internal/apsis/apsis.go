// Package apsis locates orbit extremes on a completed trajectory.
package apsis

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/orbit"
	"gonum.org/v1/gonum/floats"
)

// startupExclusion is the fraction of leading samples skipped when the raw
// aphelion search lands on the very first sample. Empirical constant from
// the perihelion-start assumption; see Aphelion.
const startupExclusion = 0.05

// Result describes one apsis sample of a trajectory.
type Result struct {
	Index    int
	Distance float64 // from the central mass, meters
	Velocity mgl64.Vec2
}

// Speed is the magnitude of the velocity at the apsis, meters per second.
func (r Result) Speed() float64 { return r.Velocity.Len() }

// Aphelion returns the sample farthest from the central mass.
//
// If the unconstrained maximum is sample 0, the orbit has not pulled away
// from its start yet and the hit is treated as spurious: the search is redone
// with the first 5% of samples (at least one) excluded, and the index is
// reported in full-trajectory coordinates. This assumes the trajectory
// begins at or near perihelion; it is not a general detector for arbitrary
// starting phases.
//
// Trajectories with fewer than 2 samples return [orbit.ErrEmptyTrajectory].
func Aphelion(traj *orbit.Trajectory) (Result, error) {
	if traj == nil || traj.Len() < 2 {
		return Result{}, orbit.ErrEmptyTrajectory
	}

	d := traj.Radii()
	idx := floats.MaxIdx(d)
	if idx == 0 {
		cutoff := int(float64(len(d)) * startupExclusion)
		if cutoff < 1 {
			cutoff = 1
		}
		idx = floats.MaxIdx(d[cutoff:]) + cutoff
	}

	return Result{Index: idx, Distance: d[idx], Velocity: traj.V[idx]}, nil
}

// Perihelion returns the sample closest to the central mass. No start-up
// exclusion applies: a perihelion start is a legitimate minimum.
func Perihelion(traj *orbit.Trajectory) (Result, error) {
	if traj == nil || traj.Len() < 2 {
		return Result{}, orbit.ErrEmptyTrajectory
	}

	d := traj.Radii()
	idx := floats.MinIdx(d)
	return Result{Index: idx, Distance: d[idx], Velocity: traj.V[idx]}, nil
}
