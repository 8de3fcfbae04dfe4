package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airmap/internal/selection"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.lay

	// Header
	s := m.data.Summary()
	header := titleStyle.Render(" airmap ─ airports & flight routes ") +
		dimStyle.Render(fmt.Sprintf(" %d airports  %d visited  %d/%d routes drawable",
			s.Airports, s.Visited, s.Drawable, s.Routes))
	header = lipgloss.NewStyle().Width(lay.contentW).MaxWidth(lay.contentW).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	// Map viewport
	var mapView string
	if m.showAttrs {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(titleStyle.Render("visited airports") + "\n" + m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderDetail(lay.mapW, lay.mapH))
	}

	// Body row
	cols := []string{}
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, mapView)
	if lay.panelW > 0 {
		cols = append(cols, " ", m.renderPanel())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f  ", m.hoverLoc.Lat, m.hoverLoc.Lon))
	}
	spacerW := max(0, lay.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords)
	footer := lipgloss.NewStyle().Width(lay.contentW).MaxWidth(lay.contentW).Render(statusLine + "\n" + help)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

// renderPanel stacks the overview map, the legend and the selection state.
func (m Model) renderPanel() string {
	lay := m.lay
	p := m.pal()
	lines := []string{
		titleStyle.Render("overview"),
		m.renderOverview(lay.ovW, lay.ovH),
		"",
		p.styles[layerVisited].Render(string(glyphPlane)) + " visited airport",
		p.styles[layerAirport].Render(string(glyphAirport)) + " airport",
		p.styles[layerSelected].Render(string(glyphSelected)) + " selected",
		p.styles[layerRoute].Render("⠤⠤") + " route",
		p.styles[layerRect].Render("⣀⣀") + " viewport",
		"",
		dimStyle.Render("state   ") + m.stateLabel(),
		dimStyle.Render("zoom    ") + fmt.Sprintf("%.0f", m.detail.Zoom()),
		dimStyle.Render("center  ") + m.detail.Center().String(),
		dimStyle.Render("palette ") + fmt.Sprintf("%d %s", m.palette+1, p.name),
	}
	return lipgloss.NewStyle().Width(lay.panelW).MaxHeight(lay.contentH).Render(strings.Join(lines, "\n"))
}

func (m Model) stateLabel() string {
	switch m.sel.State() {
	case selection.Hovering:
		return fmt.Sprintf("hovering %s", m.sel.Hovered().Code)
	case selection.Clicked:
		return fmt.Sprintf("clicked %s", m.sel.Clicked().Code)
	default:
		return "idle"
	}
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"1-4 palette",
		"Tab airports",
		"Enter go to",
		"a visited",
		"Esc clear",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
