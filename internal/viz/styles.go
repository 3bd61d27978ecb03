package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(18)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// namedColors maps the color names used by the config palette to terminal
// colors.
var namedColors = map[string]lipgloss.Color{
	"white":   lipgloss.Color("252"),
	"yellow":  lipgloss.Color("220"),
	"cyan":    lipgloss.Color("51"),
	"magenta": lipgloss.Color("201"),
	"red":     lipgloss.Color("196"),
	"gray":    lipgloss.Color("245"),
	"green":   lipgloss.Color("82"),
	"blue":    lipgloss.Color("33"),
	"orange":  lipgloss.Color("208"),
}

// ColorByName resolves a palette color name; hex values pass through,
// unknown names fall back to white.
func ColorByName(name string) lipgloss.Color {
	if len(name) > 0 && name[0] == '#' {
		return lipgloss.Color(name)
	}
	if c, ok := namedColors[name]; ok {
		return c
	}
	return namedColors["white"]
}
