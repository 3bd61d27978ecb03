package export

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

func TestOrbitSVG(t *testing.T) {
	traj := orbit.NewTrajectory(3, 3600)
	traj.R[0] = mgl64.Vec2{1.471e11, 0}
	traj.R[1] = mgl64.Vec2{0, 1.5e11}
	traj.R[2] = mgl64.Vec2{-1.521e11, 0}

	ap := apsis.Result{Index: 2, Distance: 1.521e11}
	peri := apsis.Result{Index: 0, Distance: 1.471e11}
	colors := map[string]string{"orbit": "white", "sun": "yellow"}

	svg := OrbitSVG(traj, ap, peri, colors, 800, 600)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing orbit polyline")
	}
	if strings.Count(svg, "<circle") != 3 {
		t.Errorf("expected 3 markers (sun, perihelion, aphelion), got %d",
			strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestOrbitSVGTooShort(t *testing.T) {
	if OrbitSVG(nil, apsis.Result{}, apsis.Result{}, nil, 100, 100) != "" {
		t.Error("nil trajectory should render nothing")
	}
	if OrbitSVG(orbit.NewTrajectory(1, 1), apsis.Result{}, apsis.Result{}, nil, 100, 100) != "" {
		t.Error("single-sample trajectory should render nothing")
	}
}
