package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"airmap/internal/airport"
	"airmap/internal/app"
	"airmap/internal/config"
	"airmap/internal/marker"
	"airmap/internal/projection"
	"airmap/internal/route"
	"airmap/internal/selection"
	"airmap/internal/viewport"
)

type Model struct {
	width  int
	height int
	lay    layout

	showSidebar bool
	helpVisible bool
	showAttrs   bool

	status string
	log    zerolog.Logger

	// Data
	data   *app.Dataset
	mapCfg config.MapConfig

	// Maps: both projections work in braille micro-pixels (2x4 per cell)
	detail   *projection.View
	overview *projection.View
	sync     *viewport.Sync
	sel      *selection.Controller
	palette  int

	// Airport list
	l list.Model

	// visited airports table
	tbl table.Model

	// pointer position over the detail map, for the footer
	hovering bool
	hoverLoc marker.Location
}

// New builds the UI over ds. A nil dataset gives an empty map.
func New(ds *app.Dataset, cfg config.Config, log zerolog.Logger) Model {
	if ds == nil {
		ds = &app.Dataset{Index: airport.Load(nil, nil), Routes: route.Load(nil, nil)}
	}
	m := Model{
		helpVisible: true,
		status:      "airmap ready",
		log:         log,
		data:        ds,
		mapCfg:      cfg.Map,
		palette:     clampPalette(cfg.UI.Provider - 1),
	}

	m.detail = projection.New(projection.Config{
		Center:   marker.Location{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon},
		Zoom:     cfg.Map.Zoom,
		MinZoom:  cfg.Map.MinZoom,
		MaxZoom:  cfg.Map.MaxZoom,
		TileSize: float64(cfg.Map.TileSize),
		Width:    2,
		Height:   4,
	})
	m.overview = projection.New(projection.Config{
		TileSize: float64(cfg.Map.TileSize),
		Width:    2,
		Height:   4,
	})
	m.overview.FitWorld()
	m.sync = viewport.New(m.overview, m.detail)

	r := float64(max(1, cfg.Map.HitRadius))
	detail := m.detail
	hit := selection.HitFunc(func(mk *marker.Marker, x, y int) bool {
		px, py := detail.GeoToScreen(mk.Location)
		dx, dy := px-float64(x), py-float64(y)
		return dx*dx+dy*dy <= r*r
	})
	m.sel = selection.New(ds.Index, ds.Routes, hit, selection.WithLogger(log))

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(airportItems(ds.Index), d, 0, 0)
	m.l.Title = "Airports"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	s := ds.Summary()
	m.status = fmt.Sprintf("airmap ready  %d airports, %d visited", s.Airports, s.Visited)
	return m
}

// WithStatus replaces the status line, e.g. to show a load error.
func (m Model) WithStatus(s string) Model {
	m.status = s
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func clampPalette(i int) int {
	return min(max(i, 0), len(palettes)-1)
}
