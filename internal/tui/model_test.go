package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airmap/internal/airport"
	"airmap/internal/app"
	"airmap/internal/config"
	"airmap/internal/marker"
	"airmap/internal/route"
	"airmap/internal/selection"
)

func testConfig() config.Config {
	return config.Config{
		Map: config.MapConfig{
			CenterLat: 38, CenterLon: -95,
			Zoom: 3, MinZoom: 1, MaxZoom: 10,
			TileSize: 64, HitRadius: 3,
		},
		UI: config.UIConfig{Provider: 1},
	}
}

func testDataset() *app.Dataset {
	primary := []marker.RawAirport{
		{Code: "JFK", City: "New York", Country: "United States", Lat: 40.64, Lon: -73.78},
		{Code: "LAX", City: "Los Angeles", Country: "United States", Lat: 33.94, Lon: -118.41},
		{Code: "ORD", City: "Chicago", Country: "United States", Lat: 41.98, Lon: -87.90},
	}
	visited := primary[:2]
	idx := airport.Load(primary, visited)
	routes := route.Load([]route.Raw{
		{Source: "JFK", Dest: "LAX"},
		{Source: "ORD", Dest: "JFK"},
	}, idx.VisitedLocations())
	return &app.Dataset{Index: idx, Routes: routes}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(testDataset(), testConfig(), zerolog.Nop())
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// screenCell returns the terminal cell showing an airport on the detail map.
func screenCell(t *testing.T, m Model, code string) (int, int) {
	t.Helper()
	mk, ok := m.data.Index.ByCode(code)
	require.True(t, ok, code)
	cx, cy, ok := cellOf(m.detail, mk.Location)
	require.True(t, ok, "%s on screen", code)
	return m.lay.mapX + cx, m.lay.mapY + cy
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func move(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonNone)
}

func press(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHoverShowsLabel(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, move(screenCell(t, m, "ORD")))

	require.Equal(t, selection.Hovering, m.sel.State())
	assert.Equal(t, "ORD", m.sel.Hovered().Code)
	assert.Contains(t, m.status, "Chicago (ORD)")
	assert.Contains(t, m.View(), "Chicago (ORD)")
	assert.True(t, m.hovering)
}

func TestPointerLeavingMapEndsHover(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, move(screenCell(t, m, "ORD")))
	m = update(t, m, move(0, 0))

	assert.Equal(t, selection.Idle, m.sel.State())
	assert.False(t, m.hovering)
	for mk := range m.data.Index.All() {
		assert.False(t, mk.Hidden())
	}
}

func TestClickVisitedRevealsRoutes(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, press(screenCell(t, m, "LAX")))

	require.Equal(t, selection.Clicked, m.sel.State())
	for _, r := range m.data.Routes.Routes() {
		if r.Source == "JFK" && r.Dest == "LAX" {
			assert.False(t, r.Hidden())
		} else {
			assert.True(t, r.Hidden(), "%s-%s is not drawable", r.Source, r.Dest)
		}
	}
	assert.Contains(t, m.status, "1 routes")

	// any click on the map clears the selection, even on empty space
	m = update(t, m, press(m.lay.mapX+1, m.lay.mapY+1))
	assert.Equal(t, selection.Idle, m.sel.State())
	for _, r := range m.data.Routes.Routes() {
		assert.True(t, r.Hidden())
	}
}

func TestClickNonVisitedIsNoop(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, press(screenCell(t, m, "ORD")))

	assert.Equal(t, selection.Idle, m.sel.State())
}

func TestEscClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(screenCell(t, m, "JFK")))
	require.Equal(t, selection.Clicked, m.sel.State())

	m = update(t, m, key("esc"))

	assert.Equal(t, selection.Idle, m.sel.State())
}

func TestViewportFollowsDetailMap(t *testing.T) {
	m := newTestModel(t)
	before := m.sync.Rect()
	require.Greater(t, before.W, 0.0)
	require.Greater(t, before.H, 0.0)

	m = update(t, m, key("+"))

	after := m.sync.Rect()
	assert.Less(t, after.W, before.W, "zooming in shrinks the viewport rectangle")
}

func TestDragViewportPansDetailMap(t *testing.T) {
	m := newTestModel(t)
	r := m.sync.Rect()
	c := r.Center()
	x := m.lay.ovX + int(c.X)/2
	y := m.lay.ovY + int(c.Y)/4
	lonBefore := m.detail.Center().Lon

	m = update(t, m, press(x, y))
	require.True(t, m.sync.Dragging())
	m = update(t, m, move(x+3, y))
	assert.Greater(t, m.detail.Center().Lon, lonBefore)
	assert.Equal(t, selection.Idle, m.sel.State(), "drag does not hover")

	m = update(t, m, mouse(x+3, y, tea.MouseActionRelease, tea.MouseButtonNone))
	assert.False(t, m.sync.Dragging())
}

func TestPressOutsideViewportDoesNotDrag(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, press(m.lay.ovX, m.lay.ovY))

	assert.False(t, m.sync.Dragging())
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)
	zoom := m.detail.Zoom()

	m = update(t, m, key("+"))
	assert.Equal(t, zoom+1, m.detail.Zoom())
	m = update(t, m, key("-"))
	assert.Equal(t, zoom, m.detail.Zoom())

	m = update(t, m, key("3"))
	assert.Equal(t, 2, m.palette)
	assert.Contains(t, m.status, "night")

	lon := m.detail.Center().Lon
	m = update(t, m, key("left"))
	assert.Less(t, m.detail.Center().Lon, lon)

	m = update(t, m, key("r"))
	assert.InDelta(t, -95, m.detail.Center().Lon, 1e-9)

	m = update(t, m, key("h"))
	assert.False(t, m.helpVisible)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSidebarEnterFocusesAirport(t *testing.T) {
	m := newTestModel(t)
	mapW := m.lay.mapW

	m = update(t, m, key("tab"))
	require.True(t, m.showSidebar)
	assert.Less(t, m.lay.mapW, mapW)

	m = update(t, m, key("enter"))

	// items are in code order; the first is JFK
	assert.InDelta(t, 40.64, m.detail.Center().Lat, 1e-9)
	assert.InDelta(t, -73.78, m.detail.Center().Lon, 1e-9)
	assert.Contains(t, m.status, "New York (JFK)")
}

func TestVisitedTable(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("a"))

	require.True(t, m.showAttrs)
	rows := m.tbl.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "JFK", rows[0][0])
	assert.Equal(t, "1", rows[0][6])
	assert.Equal(t, "LAX", rows[1][0])

	m = update(t, m, key("enter"))
	assert.InDelta(t, -73.78, m.detail.Center().Lon, 1e-9)

	m = update(t, m, key("esc"))
	assert.False(t, m.showAttrs)
}

func TestNilDataset(t *testing.T) {
	m := New(nil, testConfig(), zerolog.Nop()).WithStatus("load failed")
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, "load failed", m.status)
	assert.NotEmpty(t, m.View())
}
