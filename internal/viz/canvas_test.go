package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set(0,0) left the cell empty")
	}

	// Out-of-range coordinates must be ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("Clear left lit dots behind")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawLine(0, 0, 15, 15)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Grid[3][7] == 0x2800 {
		t.Error("line end not drawn")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 cells per row, got %d", len([]rune(line)))
		}
	}
}

func TestRenderOrbit(t *testing.T) {
	traj := orbit.NewTrajectory(4, 3600)
	traj.R[0] = mgl64.Vec2{1.471e11, 0}
	traj.R[1] = mgl64.Vec2{0, 1.5e11}
	traj.R[2] = mgl64.Vec2{-1.521e11, 0}
	traj.R[3] = mgl64.Vec2{0, -1.5e11}

	ap := apsis.Result{Index: 2, Distance: 1.521e11}
	peri := apsis.Result{Index: 0, Distance: 1.471e11}
	colors := map[string]string{
		"orbit": "white", "sun": "yellow", "perihelion": "cyan", "aphelion": "magenta",
	}

	out := RenderOrbit(traj, ap, peri, colors, 40, 20)
	if out == "" {
		t.Fatal("empty frame")
	}
	if !strings.Contains(out, "Aphelion") || !strings.Contains(out, "Perihelion") {
		t.Error("legend missing apsis entries")
	}
	if !strings.Contains(out, "152.1 Gm") {
		t.Error("legend should state the aphelion distance in Gm")
	}
}

func TestColorByName(t *testing.T) {
	if ColorByName("#ff00ff") != "#ff00ff" {
		t.Error("hex colors should pass through")
	}
	if ColorByName("yellow") != namedColors["yellow"] {
		t.Error("named color lookup failed")
	}
	if ColorByName("no-such-color") != namedColors["white"] {
		t.Error("unknown names should fall back to white")
	}
}
