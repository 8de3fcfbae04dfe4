package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"airmap/internal/airport"
	"airmap/internal/marker"
)

type airportItem struct {
	m *marker.Marker
}

func (i airportItem) Title() string {
	if i.m.Visited() {
		return string(glyphPlane) + " " + i.m.Title()
	}
	return i.m.Title()
}
func (i airportItem) Description() string { return i.m.Country }
func (i airportItem) FilterValue() string {
	return i.m.Code + " " + i.m.City + " " + i.m.Country
}

func airportItems(idx *airport.Index) []list.Item {
	items := make([]list.Item, 0, idx.Len())
	for m := range idx.All() {
		items = append(items, airportItem{m: m})
	}
	return items
}

// focus centers the detail map on an airport picked from the list or table.
func (m *Model) focus(mk *marker.Marker) {
	m.detail.PanTo(mk.Location)
	m.status = "centered on " + mk.Title() + "  " + mk.Location.String()
	m.log.Debug().Str("code", mk.Code).Msg("focus")
}
