package tui

import (
	"unicode/utf8"

	"airmap/internal/marker"
	"airmap/internal/projection"
)

// renderDetail draws the detail map: country outlines, revealed routes and
// every unhidden marker, with a label beside the active one.
func (m Model) renderDetail(w, h int) string {
	c := newCanvas(w, h)

	land := newBrailleBuf(w, h)
	m.drawCountries(land, m.detail)
	c.blit(land, layerLand)

	routes := newBrailleBuf(w, h)
	for r := range m.data.Routes.Visible() {
		from, to, ok := r.Endpoints()
		if !ok {
			continue
		}
		x0, y0 := m.detail.GeoToScreen(from)
		x1, y1 := m.detail.GeoToScreen(to)
		routes.drawSegment(x0, y0, x1, y1)
	}
	c.blit(routes, layerRoute)

	var active *marker.Marker
	for mk := range m.data.Index.All() {
		if mk.Hidden() {
			continue
		}
		if mk.Selected() {
			active = mk
			continue
		}
		cx, cy, ok := cellOf(m.detail, mk.Location)
		if !ok {
			continue
		}
		if mk.Kind == marker.KindPlane {
			c.put(cx, cy, glyphPlane, layerVisited)
		} else {
			c.put(cx, cy, glyphAirport, layerAirport)
		}
	}

	if active != nil {
		if cx, cy, ok := cellOf(m.detail, active.Location); ok {
			c.put(cx, cy, glyphSelected, layerSelected)
			label := " " + active.Title()
			lx := cx + 1
			if lx+utf8.RuneCountInString(label) > w {
				label = active.Title() + " "
				lx = cx - utf8.RuneCountInString(label)
			}
			c.text(lx, cy, label, layerLabel)
		}
	}
	return c.render(m.pal())
}

// renderOverview draws the world minimap with visited airports and the
// viewport rectangle of the detail map.
func (m Model) renderOverview(w, h int) string {
	c := newCanvas(w, h)

	land := newBrailleBuf(w, h)
	m.drawCountries(land, m.overview)
	c.blit(land, layerLand)

	dots := newBrailleBuf(w, h)
	for mk := range m.data.Index.All() {
		if !mk.Visited() {
			continue
		}
		x, y := m.overview.GeoToScreen(mk.Location)
		dots.setPixel(int(x), int(y))
	}
	c.blit(dots, layerVisited)

	r := m.sync.Rect()
	rect := newBrailleBuf(w, h)
	rect.drawRect(r.X, r.Y, r.W, r.H)
	c.blit(rect, layerRect)

	if a := m.sel.Active(); a != nil {
		if cx, cy, ok := cellOf(m.overview, a.Location); ok {
			c.put(cx, cy, glyphSelected, layerSelected)
		}
	}
	return c.render(m.pal())
}

// drawCountries outlines every country ring as projected by v.
func (m Model) drawCountries(b *brailleBuf, v *projection.View) {
	for _, poly := range m.data.Countries.Polygons {
		for _, ring := range poly {
			if len(ring) < 2 {
				continue
			}
			px, py := v.GeoToScreen(marker.Location{Lat: ring[0][1], Lon: ring[0][0]})
			for _, p := range ring[1:] {
				x, y := v.GeoToScreen(marker.Location{Lat: p[1], Lon: p[0]})
				b.drawSegment(px, py, x, y)
				px, py = x, y
			}
		}
	}
}

// cellOf returns the terminal cell of loc in a micro-pixel view.
func cellOf(v *projection.View, loc marker.Location) (int, int, bool) {
	if !v.Visible(loc) {
		return 0, 0, false
	}
	x, y := v.GeoToScreen(loc)
	return int(x) / 2, int(y) / 4, true
}
