package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// palette colors every map layer. Keys 1-4 switch between them for both maps.
type palette struct {
	name   string
	styles [layerCount]lipgloss.Style
}

func newPalette(name string, land, route, rect, airport, visited, selected, label string) palette {
	fg := func(c string) lipgloss.Style {
		if c == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	p := palette{name: name}
	p.styles[layerNone] = lipgloss.NewStyle()
	p.styles[layerLand] = fg(land)
	p.styles[layerRoute] = fg(route)
	p.styles[layerRect] = fg(rect).Bold(true)
	p.styles[layerAirport] = fg(airport)
	p.styles[layerVisited] = fg(visited)
	p.styles[layerSelected] = fg(selected).Bold(true)
	p.styles[layerLabel] = fg(label).Bold(true)
	return p
}

var palettes = []palette{
	newPalette("classic", "#3B4A5A", "#F59E0B", "#7C3AED", "#6B7280", "#38BDF8", "#F43F5E", "#E6E6E6"),
	newPalette("terrain", "#4D7C0F", "#DC2626", "#FACC15", "#A8A29E", "#0EA5E9", "#F97316", "#FDE68A"),
	newPalette("night", "#1E3A8A", "#22D3EE", "#F472B6", "#475569", "#A3E635", "#FB7185", "#F8FAFC"),
	newPalette("mono", "", "", "", "", "", "", ""),
}

func (m Model) pal() palette { return palettes[m.palette] }
