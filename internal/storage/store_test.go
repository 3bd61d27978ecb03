package storage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

func sampleTrajectory() *orbit.Trajectory {
	traj := orbit.NewTrajectory(3, 3600)
	traj.R[0] = mgl64.Vec2{1.471e11, 0}
	traj.V[0] = mgl64.Vec2{0, -3.029e4}
	traj.R[1] = mgl64.Vec2{1.47e11, -1.09e8}
	traj.V[1] = mgl64.Vec2{120.5, -3.0288e4}
	traj.R[2] = mgl64.Vec2{1.469e11, -2.18e8}
	traj.V[2] = mgl64.Vec2{241.1, -3.0285e4}
	return traj
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	traj := sampleTrajectory()
	ap := apsis.Result{Index: 2, Distance: 1.469e11, Velocity: traj.V[2]}
	peri := apsis.Result{Index: 0, Distance: 1.471e11, Velocity: traj.V[0]}

	runID, err := st.Save("earth", "rk4", traj, ap, peri, map[string]float64{"energy_drift": 1e-9})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.Planet != "earth" || meta.Method != "rk4" {
		t.Errorf("metadata mismatch: %s/%s", meta.Planet, meta.Method)
	}
	if meta.Steps != 3 || meta.Dt != 3600 {
		t.Errorf("expected 3 steps at dt 3600, got %d at %g", meta.Steps, meta.Dt)
	}
	if meta.AphelionM != 1.469e11 || meta.AphelionIndex != 2 {
		t.Errorf("aphelion summary lost: %g at %d", meta.AphelionM, meta.AphelionIndex)
	}
	if meta.Metrics["energy_drift"] != 1e-9 {
		t.Errorf("metrics lost: %v", meta.Metrics)
	}
}

func TestLoadTrajectoryRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	traj := sampleTrajectory()
	runID, err := st.Save("earth", "rk4", traj, apsis.Result{}, apsis.Result{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("LoadTrajectory failed: %v", err)
	}
	if loaded.Len() != traj.Len() {
		t.Fatalf("length: got %d, want %d", loaded.Len(), traj.Len())
	}
	if loaded.Dt != traj.Dt {
		t.Errorf("dt: got %g, want %g", loaded.Dt, traj.Dt)
	}
	for i := 0; i < traj.Len(); i++ {
		if loaded.R[i] != traj.R[i] || loaded.V[i] != traj.V[i] {
			t.Errorf("sample %d did not round-trip: %v/%v vs %v/%v",
				i, loaded.R[i], loaded.V[i], traj.R[i], traj.V[i])
		}
	}
}

func TestSaveBackToBackRunsDistinct(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	a, err := st.Save("earth", "rk4", sampleTrajectory(), apsis.Result{}, apsis.Result{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save("earth", "rk4", sampleTrajectory(), apsis.Result{}, apsis.Result{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("consecutive saves reused run id %s", a)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected both runs on disk, listed %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store should list no runs, got %d", len(runs))
	}

	if _, err := st.Save("mars", "euler", sampleTrajectory(), apsis.Result{}, apsis.Result{}, nil); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Planet != "mars" {
		t.Errorf("unexpected listing: %+v", runs)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on a missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
