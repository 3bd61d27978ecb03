package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

// RenderOrbit draws the trajectory on a Braille canvas with the central
// mass at the origin, marks the perihelion and aphelion samples, and
// appends a color-keyed legend. colors is the merged palette from the
// configuration (orbit, sun, perihelion, aphelion keys).
func RenderOrbit(traj *orbit.Trajectory, ap, peri apsis.Result, colors map[string]string, width, height int) string {
	c := NewCanvas(width, height)
	proj := newProjection(traj, width*2, height*4)

	for i := 1; i < traj.Len(); i++ {
		x0, y0 := proj.toPixel(traj.R[i-1])
		x1, y1 := proj.toPixel(traj.R[i])
		c.DrawLine(x0, y0, x1, y1)
	}

	// Sun at the origin.
	sx, sy := proj.toPixel(mgl64.Vec2{})
	c.DrawMarker(sx, sy)

	if peri.Index < traj.Len() {
		px, py := proj.toPixel(traj.R[peri.Index])
		c.DrawMarker(px, py)
	}
	if ap.Index < traj.Len() {
		ax, ay := proj.toPixel(traj.R[ap.Index])
		c.DrawMarker(ax, ay)
	}

	frame := lipgloss.NewStyle().
		Foreground(ColorByName(colors["orbit"])).
		Render(strings.TrimRight(c.String(), "\n"))

	var sb strings.Builder
	sb.WriteString(frame)
	sb.WriteString("\n")
	sb.WriteString(legend(ap, peri, colors))
	return sb.String()
}

func legend(ap, peri apsis.Result, colors map[string]string) string {
	entry := func(key, label string) string {
		dot := lipgloss.NewStyle().Foreground(ColorByName(colors[key])).Render("●")
		return fmt.Sprintf("%s %s", dot, label)
	}

	parts := []string{
		entry("sun", "Sun"),
		entry("perihelion", fmt.Sprintf("Perihelion %.1f Gm", peri.Distance/1e9)),
		entry("aphelion", fmt.Sprintf("Aphelion %.1f Gm @ %.1f km/s", ap.Distance/1e9, ap.Speed()/1e3)),
	}
	return strings.Join(parts, "   ") + "\n"
}

// projection maps world positions into sub-pixel canvas coordinates,
// centered on the origin and padded so the whole orbit fits.
type projection struct {
	scale  float64
	cx, cy int
}

func newProjection(traj *orbit.Trajectory, pxWidth, pxHeight int) projection {
	extent := 0.0
	for _, r := range traj.R {
		if v := absFloat(r.X()); v > extent {
			extent = v
		}
		if v := absFloat(r.Y()); v > extent {
			extent = v
		}
	}
	if extent == 0 {
		extent = 1
	}

	half := minInt(pxWidth, pxHeight) / 2
	return projection{
		scale: float64(half) * 0.9 / extent,
		cx:    pxWidth / 2,
		cy:    pxHeight / 2,
	}
}

func (p projection) toPixel(r mgl64.Vec2) (int, int) {
	// Screen y grows downward.
	return p.cx + int(r.X()*p.scale), p.cy - int(r.Y()*p.scale)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
