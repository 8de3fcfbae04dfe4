package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"airmap/internal/marker"
	"airmap/internal/selection"
	"airmap/internal/viewport"
)

// pan steps in micro-pixels
const (
	panStepX = 16
	panStepY = 16
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	if !m.sync.Dragging() {
		m.syncViewport()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "1", "2", "3", "4":
		m.palette = clampPalette(int(msg.String()[0] - '1'))
		m.status = "palette: " + m.pal().name
	case "+", "=":
		m.detail.ZoomBy(1)
		m.status = fmt.Sprintf("zoom: %.0f", m.detail.Zoom())
	case "-", "_":
		m.detail.ZoomBy(-1)
		m.status = fmt.Sprintf("zoom: %.0f", m.detail.Zoom())
	case "tab":
		m.showSidebar = !m.showSidebar
		m.resize()
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "r":
		m.detail.SetZoom(m.mapCfg.Zoom)
		m.detail.PanTo(marker.Location{Lat: m.mapCfg.CenterLat, Lon: m.mapCfg.CenterLon})
		m.status = "view reset"
	case "esc":
		if m.showAttrs {
			m.showAttrs = false
			return nil
		}
		m.sel.Reset()
		m.status = "selection cleared"
	case "enter":
		switch {
		case m.showAttrs:
			if row := m.tbl.SelectedRow(); len(row) > 0 {
				if mk, ok := m.data.Index.ByCode(row[0]); ok {
					m.focus(mk)
				}
			}
		case m.showSidebar:
			if it, ok := m.l.SelectedItem().(airportItem); ok {
				m.focus(it.m)
			}
		}
	default:
		return m.navigate(msg)
	}
	return nil
}

// navigate routes arrow keys to whichever widget has focus, or pans the map.
func (m *Model) navigate(msg tea.KeyMsg) tea.Cmd {
	if m.showAttrs {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return cmd
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd
	}
	switch msg.String() {
	case "up":
		m.detail.PanBy(0, -panStepY)
	case "down":
		m.detail.PanBy(0, panStepY)
	case "left":
		m.detail.PanBy(-panStepX, 0)
	case "right":
		m.detail.PanBy(panStepX, 0)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lay := m.lay
	inMap := lay.inMap(msg.X, msg.Y) && !m.showAttrs
	mx, my := toMicro(msg.X, msg.Y, lay.mapX, lay.mapY)
	ox, oy := toMicro(msg.X, msg.Y, lay.ovX, lay.ovY)
	ovPoint := viewport.Point{X: float64(ox), Y: float64(oy)}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if inMap || lay.inOverview(msg.X, msg.Y) {
			if msg.Button == tea.MouseButtonWheelUp {
				m.detail.ZoomBy(1)
			} else {
				m.detail.ZoomBy(-1)
			}
			m.status = fmt.Sprintf("zoom: %.0f", m.detail.Zoom())
		}
	case msg.Action == tea.MouseActionMotion:
		if m.sync.Dragging() {
			m.sync.OnDrag(ovPoint)
			return
		}
		if !inMap {
			m.hovering = false
			m.sel.PointerLeave()
			return
		}
		m.hovering = true
		m.hoverLoc = m.detail.ScreenToGeo(float64(mx), float64(my))
		m.sel.PointerMove(mx, my)
		if m.sel.State() == selection.Hovering {
			m.status = m.selectionStatus()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if lay.inOverview(msg.X, msg.Y) {
			if m.sync.StartDrag(ovPoint) {
				m.status = "dragging viewport"
			}
			return
		}
		if inMap {
			m.sel.Click(mx, my)
			m.status = m.selectionStatus()
			if m.showAttrs {
				m.refreshAttrs()
			}
		}
	case msg.Action == tea.MouseActionRelease:
		if m.sync.Dragging() {
			m.sync.EndDrag()
			m.status = "centered on " + m.detail.Center().String()
		}
	}
}

func (m Model) selectionStatus() string {
	switch m.sel.State() {
	case selection.Hovering:
		h := m.sel.Hovered()
		return fmt.Sprintf("%s  %s  alt %d ft", h.Title(), h.Country, h.Altitude)
	case selection.Clicked:
		c := m.sel.Clicked()
		n := 0
		for range m.data.Routes.Visible() {
			n++
		}
		return fmt.Sprintf("%s  %d routes", c.Title(), n)
	default:
		return "click a visited airport to show its routes"
	}
}

// resize recomputes the layout and the pixel size of both maps.
func (m *Model) resize() {
	m.lay = computeLayout(m.width, m.height, m.showSidebar)
	m.detail.Resize(m.lay.mapW*2, m.lay.mapH*4)
	if m.lay.panelW > 0 {
		m.overview.Resize(m.lay.ovW*2, m.lay.ovH*4)
		m.overview.FitWorld()
	}
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, m.lay.contentH-2)
	}
}

// syncViewport derives the overview rectangle from the detail map corners.
func (m *Model) syncViewport() {
	x0, y0 := m.overview.GeoToScreen(m.detail.TopLeft())
	x1, y1 := m.overview.GeoToScreen(m.detail.BottomRight())
	m.sync.SyncFromDetailView(viewport.Point{X: x0, Y: y0}, viewport.Point{X: x1, Y: y1})
}
