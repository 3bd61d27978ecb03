package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

// svgColors translates the config palette names into SVG colors; hex values
// pass through unchanged.
func svgColor(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// OrbitSVG renders a trajectory as an SVG document: the orbit path as a
// polyline, the central mass at the origin, and the perihelion/aphelion
// samples as circles. colors carries the merged palette (orbit, sun,
// perihelion, aphelion keys).
func OrbitSVG(traj *orbit.Trajectory, ap, peri apsis.Result, colors map[string]string, width, height int) string {
	if traj == nil || traj.Len() < 2 {
		return ""
	}

	minX, maxX := traj.R[0].X(), traj.R[0].X()
	minY, maxY := traj.R[0].Y(), traj.R[0].Y()
	for _, r := range traj.R {
		if r.X() < minX {
			minX = r.X()
		}
		if r.X() > maxX {
			maxX = r.X()
		}
		if r.Y() < minY {
			minY = r.Y()
		}
		if r.Y() > maxY {
			maxY = r.Y()
		}
	}
	// The sun sits at the origin; keep it in frame.
	if minX > 0 {
		minX = 0
	}
	if maxX < 0 {
		maxX = 0
	}
	if minY > 0 {
		minY = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	toX := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	toY := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="`,
		svgColor(colors["orbit"], "white")))
	for i := 0; i < traj.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(traj.R[i].X()), toY(traj.R[i].Y())))
	}
	sb.WriteString("\"/>\n")

	circle := func(x, y, radius float64, color string) {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, radius, color))
	}

	circle(toX(0), toY(0), 8, svgColor(colors["sun"], "yellow"))
	if peri.Index < traj.Len() {
		circle(toX(traj.R[peri.Index].X()), toY(traj.R[peri.Index].Y()), 4,
			svgColor(colors["perihelion"], "cyan"))
	}
	if ap.Index < traj.Len() {
		circle(toX(traj.R[ap.Index].X()), toY(traj.R[ap.Index].Y()), 4,
			svgColor(colors["aphelion"], "magenta"))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
