package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Planet != "earth" {
		t.Errorf("expected planet earth, got %s", cfg.Planet)
	}
	if cfg.Method != "rk4" {
		t.Errorf("expected method rk4, got %s", cfg.Method)
	}
	if cfg.TimeStep <= 0 {
		t.Error("time step should be positive")
	}
	if _, ok := cfg.Planets["earth"]; !ok {
		t.Error("catalog should contain earth")
	}
}

func TestInitialStateConversion(t *testing.T) {
	cfg := DefaultConfig()

	s, err := cfg.InitialState("earth")
	if err != nil {
		t.Fatalf("InitialState failed: %v", err)
	}

	// 147.1 million km on the x axis, 30.29 km/s along negative y.
	if s.R != (mgl64.Vec2{1.471e11, 0}) {
		t.Errorf("position: got %v, want (1.471e11, 0)", s.R)
	}
	if s.V != (mgl64.Vec2{0, -3.029e4}) {
		t.Errorf("velocity: got %v, want (0, -3.029e4)", s.V)
	}
}

func TestInitialStateUnknownPlanet(t *testing.T) {
	if _, err := DefaultConfig().InitialState("vulcan"); err == nil {
		t.Error("expected error for unknown planet")
	}
}

func TestTimeSettings(t *testing.T) {
	cfg := DefaultConfig()

	dt, steps := cfg.TimeSettings("earth")
	if dt != 3600 {
		t.Errorf("dt: got %g, want 3600", dt)
	}
	if steps != 8760 {
		t.Errorf("steps: got %d, want 8760 (one year at hourly steps)", steps)
	}

	// A body without a period falls back to the global default days.
	cfg.Planets["comet"] = PlanetConfig{PerihelionDistanceGm: 88, PerihelionSpeedKms: 54}
	if _, steps = cfg.TimeSettings("comet"); steps != 8760 {
		t.Errorf("fallback steps: got %d, want 8760", steps)
	}

	cfg.DefaultDays = 100
	if _, steps = cfg.TimeSettings("comet"); steps != 2400 {
		t.Errorf("custom default days: got %d steps, want 2400", steps)
	}
}

func TestPlanetColorsMerge(t *testing.T) {
	cfg := DefaultConfig()

	colors := cfg.PlanetColors("mars")
	if colors["orbit"] != "red" {
		t.Errorf("per-planet override should win, got orbit=%s", colors["orbit"])
	}
	if colors["sun"] != "yellow" {
		t.Errorf("global color should survive the merge, got sun=%s", colors["sun"])
	}

	// A body without overrides keeps the global palette untouched.
	colors = cfg.PlanetColors("earth")
	if colors["orbit"] != "white" {
		t.Errorf("expected global orbit color, got %s", colors["orbit"])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbitlab.yaml")
	body := `
planet: mars
method: euler
time_step_s: 600
planets:
  halley:
    perihelion_distance_gm: 87.7
    perihelion_speed_kms: 54.5
    orbital_period_days: 27507
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Planet != "mars" || cfg.Method != "euler" || cfg.TimeStep != 600 {
		t.Errorf("file values should win: %s %s %g", cfg.Planet, cfg.Method, cfg.TimeStep)
	}
	if _, ok := cfg.Planets["earth"]; !ok {
		t.Error("defaults should survive for keys the file omits")
	}
	if _, ok := cfg.Planets["halley"]; !ok {
		t.Error("file-defined bodies should be merged into the catalog")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Planet = "pluto"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Planet != "pluto" {
		t.Errorf("round trip lost the planet: got %s", loaded.Planet)
	}
}
