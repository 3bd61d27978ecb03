package config

import "sort"

// Planets is the built-in body catalog. Distances at perihelion in million
// km, speeds in km/s, sidereal periods in days.
var Planets = map[string]PlanetConfig{
	"mercury": {
		PerihelionDistanceGm: 46.0,
		PerihelionSpeedKms:   58.98,
		OrbitalPeriodDays:    88,
	},
	"venus": {
		PerihelionDistanceGm: 107.5,
		PerihelionSpeedKms:   35.26,
		OrbitalPeriodDays:    225,
	},
	"earth": {
		PerihelionDistanceGm: 147.1,
		PerihelionSpeedKms:   30.29,
		OrbitalPeriodDays:    365,
	},
	"mars": {
		PerihelionDistanceGm: 206.7,
		PerihelionSpeedKms:   26.50,
		OrbitalPeriodDays:    687,
		Colors:               map[string]string{"orbit": "red"},
	},
	"jupiter": {
		PerihelionDistanceGm: 740.6,
		PerihelionSpeedKms:   13.72,
		OrbitalPeriodDays:    4333,
	},
	"saturn": {
		PerihelionDistanceGm: 1357.6,
		PerihelionSpeedKms:   10.18,
		OrbitalPeriodDays:    10759,
	},
	"pluto": {
		PerihelionDistanceGm: 4436.8,
		PerihelionSpeedKms:   6.10,
		OrbitalPeriodDays:    90560,
		Colors:               map[string]string{"orbit": "gray"},
	},
}

// KnownPlanets lists the configured body names, sorted.
func KnownPlanets(c *Config) []string {
	names := make([]string, 0, len(c.Planets))
	for name := range c.Planets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
