package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/viz"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

type TickMsg time.Time

// Model animates a propagation run in the terminal: a fixed number of
// stepper calls per frame, the traced path on a Braille canvas, and a stats
// panel. Space pauses, r restarts from the initial state, q quits.
type Model struct {
	field         orbit.Gravity
	stepper       orbit.Stepper
	planet        string
	initial       orbit.State
	state         orbit.State
	t             float64
	dt            float64
	stepsPerFrame int
	fps           int

	canvas *viz.Canvas
	proj   func(mgl64.Vec2) (int, int)

	running bool
	err     error
}

// NewModel prepares a live view. scaleRadius is the world radius mapped to
// the canvas edge; twice the starting distance keeps an elliptical orbit in
// frame.
func NewModel(planet string, field orbit.Gravity, stepper orbit.Stepper, s0 orbit.State, dt float64, stepsPerFrame, fps int) Model {
	canvas := viz.NewCanvas(canvasWidth, canvasHeight)

	scaleRadius := s0.Radius() * 2.2
	if scaleRadius == 0 {
		scaleRadius = 1
	}
	pxW, pxH := canvasWidth*2, canvasHeight*4
	half := pxH / 2
	scale := float64(half) * 0.9 / scaleRadius
	proj := func(r mgl64.Vec2) (int, int) {
		return pxW/2 + int(r.X()*scale), pxH/2 - int(r.Y()*scale)
	}

	m := Model{
		field:         field,
		stepper:       stepper,
		planet:        planet,
		initial:       s0,
		state:         s0,
		dt:            dt,
		stepsPerFrame: stepsPerFrame,
		fps:           fps,
		canvas:        canvas,
		proj:          proj,
		running:       true,
	}
	m.drawSun()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial
			m.t = 0
			m.err = nil
			m.running = true
			m.canvas.Clear()
			m.drawSun()
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerFrame; i++ {
				next, err := m.stepper.Step(m.field, m.state, m.dt)
				if err != nil {
					m.err = err
					m.running = false
					break
				}
				m.state = next
				m.t += m.dt
				x, y := m.proj(m.state.R)
				m.canvas.Set(x, y)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var stats strings.Builder
	stats.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("%s orbit", m.planet)) + "\n")
	row := func(label, value string) {
		stats.WriteString(viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value) + "\n")
	}
	row("elapsed", fmt.Sprintf("%.1f days", m.t/86400))
	row("distance", fmt.Sprintf("%.2f Gm", m.state.Radius()/1e9))
	row("speed", fmt.Sprintf("%.2f km/s", m.state.Speed()/1e3))
	row("energy", fmt.Sprintf("%.4e J/kg", m.field.Energy(m.state)))

	status := "running"
	if m.err != nil {
		status = m.err.Error()
	} else if !m.running {
		status = "paused"
	}
	row("status", status)

	frame := viz.PanelStyle.Render(m.canvas.String())
	help := viz.HelpStyle.Render("space pause · r reset · q quit")
	return frame + "\n" + stats.String() + help + "\n"
}

func (m Model) drawSun() {
	x, y := m.proj(mgl64.Vec2{})
	m.canvas.DrawMarker(x, y)
}

// Run starts the live view and blocks until the user quits.
func Run(planet string, field orbit.Gravity, stepper orbit.Stepper, s0 orbit.State, dt float64, stepsPerFrame, fps int) error {
	p := tea.NewProgram(NewModel(planet, field, stepper, s0, dt, stepsPerFrame, fps))
	_, err := p.Run()
	return err
}
