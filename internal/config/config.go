package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/orbit"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPlanet   = "earth"
	DefaultMethod   = "rk4"
	DefaultTimeStep = 3600.0 // seconds
	DefaultSimDays  = 365.0
)

// Config is the resolved run configuration: which body, which method, the
// time-marching settings, and presentation colors. Distances in the planet
// catalog are stated in million km and speeds in km/s; resolution converts
// them to SI.
type Config struct {
	Planet        string                  `yaml:"planet"`
	Method        string                  `yaml:"method"`
	TimeStep      float64                 `yaml:"time_step_s"`
	DefaultDays   float64                 `yaml:"default_simulation_days"`
	CentralMassKg float64                 `yaml:"central_mass_kg"`
	Colors        map[string]string       `yaml:"colors"`
	Planets       map[string]PlanetConfig `yaml:"planets"`
}

// PlanetConfig holds one body's perihelion initial conditions and optional
// per-body overrides.
type PlanetConfig struct {
	PerihelionDistanceGm float64           `yaml:"perihelion_distance_gm"` // million km
	PerihelionSpeedKms   float64           `yaml:"perihelion_speed_kms"`   // km/s
	OrbitalPeriodDays    float64           `yaml:"orbital_period_days,omitempty"`
	Colors               map[string]string `yaml:"colors,omitempty"`
}

// DefaultConfig returns the built-in configuration: the full planet catalog,
// RK4 at hourly steps, Sun as the central mass.
func DefaultConfig() *Config {
	planets := make(map[string]PlanetConfig, len(Planets))
	for name, p := range Planets {
		planets[name] = p
	}
	return &Config{
		Planet:        DefaultPlanet,
		Method:        DefaultMethod,
		TimeStep:      DefaultTimeStep,
		DefaultDays:   DefaultSimDays,
		CentralMassKg: orbit.SunMass,
		Colors: map[string]string{
			"orbit":      "white",
			"sun":        "yellow",
			"perihelion": "cyan",
			"aphelion":   "magenta",
		},
		Planets: planets,
	}
}

// Load reads a yaml file over the defaults; file values win, omitted keys
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Field returns the central acceleration field of the configuration.
func (c *Config) Field() orbit.Gravity {
	m := c.CentralMassKg
	if m == 0 {
		m = orbit.SunMass
	}
	return orbit.NewGravity(orbit.G, m)
}

// InitialState resolves the named body's perihelion start: position on the
// positive x axis, velocity along negative y, converted to SI units.
func (c *Config) InitialState(planet string) (orbit.State, error) {
	p, ok := c.Planets[planet]
	if !ok {
		return orbit.State{}, fmt.Errorf("unknown planet %q (known: %v)", planet, KnownPlanets(c))
	}
	return orbit.State{
		R: mgl64.Vec2{p.PerihelionDistanceGm * 1e9, 0},
		V: mgl64.Vec2{0, -p.PerihelionSpeedKms * 1e3},
	}, nil
}

// TimeSettings resolves the step size and sample count for the named body.
// The body's own orbital period wins; bodies without one fall back to the
// global default days.
func (c *Config) TimeSettings(planet string) (dt float64, steps int) {
	dt = c.TimeStep
	if dt <= 0 {
		dt = DefaultTimeStep
	}

	days := c.DefaultDays
	if days <= 0 {
		days = DefaultSimDays
	}
	if p, ok := c.Planets[planet]; ok && p.OrbitalPeriodDays > 0 {
		days = p.OrbitalPeriodDays
	}

	steps = int(days * 24 * 3600 / dt)
	return dt, steps
}

// PlanetColors merges the global palette with the body's overrides; the
// body wins on conflicts.
func (c *Config) PlanetColors(planet string) map[string]string {
	merged := make(map[string]string, len(c.Colors))
	for k, v := range c.Colors {
		merged[k] = v
	}
	if p, ok := c.Planets[planet]; ok {
		for k, v := range p.Colors {
			merged[k] = v
		}
	}
	return merged
}
