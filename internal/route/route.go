// Package route holds flight routes between airports. Routes refer to their
// endpoints by airport code only.
package route

import (
	"iter"
	"strings"

	"github.com/peterstace/simplefeatures/geom"

	"airmap/internal/marker"
)

// Raw is a route record as produced by a geo-data loader.
type Raw struct {
	Source string
	Dest   string
}

// Route connects two airports. It carries geometry only when both endpoints
// resolved at load time.
type Route struct {
	Source string
	Dest   string

	path   *[2]marker.Location
	hidden bool
}

func (r *Route) Hidden() bool { return r.hidden }

// Drawable reports whether both endpoints resolved to a location.
func (r *Route) Drawable() bool { return r.path != nil }

// Endpoints returns the resolved source and destination locations.
func (r *Route) Endpoints() (from, to marker.Location, ok bool) {
	if r.path == nil {
		return marker.Location{}, marker.Location{}, false
	}
	return r.path[0], r.path[1], true
}

// Touches reports whether code is one of the endpoints.
func (r *Route) Touches(code string) bool {
	return r.Source == code || r.Dest == code
}

// LineString returns the route as a two-point lon/lat line. Routes that are
// not drawable or whose endpoints coincide report false.
func (r *Route) LineString() (geom.LineString, bool) {
	if r.path == nil {
		return geom.LineString{}, false
	}
	seq := geom.NewSequence([]float64{
		r.path[0].Lon, r.path[0].Lat,
		r.path[1].Lon, r.path[1].Lat,
	}, geom.DimXY)
	ls, err := geom.NewLineString(seq)
	if err != nil {
		return geom.LineString{}, false
	}
	return ls, true
}

// Table owns all routes in load order.
type Table struct {
	routes []*Route
}

// Load builds routes from raw records, resolving endpoint codes against
// endpoints. Records missing either code are dropped. Every route starts hidden.
func Load(raw []Raw, endpoints map[string]marker.Location) *Table {
	t := &Table{routes: make([]*Route, 0, len(raw))}
	for _, rr := range raw {
		src := strings.TrimSpace(rr.Source)
		dst := strings.TrimSpace(rr.Dest)
		if src == "" || dst == "" {
			continue
		}
		r := &Route{Source: src, Dest: dst, hidden: true}
		from, okFrom := endpoints[src]
		to, okTo := endpoints[dst]
		if okFrom && okTo {
			r.path = &[2]marker.Location{from, to}
		}
		t.routes = append(t.routes, r)
	}
	return t
}

// RoutesFor yields every route whose source or destination is code. The
// sequence can be ranged over more than once.
func (t *Table) RoutesFor(code string) iter.Seq[*Route] {
	return func(yield func(*Route) bool) {
		for _, r := range t.routes {
			if r.Touches(code) && !yield(r) {
				return
			}
		}
	}
}

// Reveal unhides the drawable routes touching code and returns how many were
// revealed. Routes without geometry stay hidden.
func (t *Table) Reveal(code string) int {
	n := 0
	for r := range t.RoutesFor(code) {
		if !r.Drawable() {
			continue
		}
		r.hidden = false
		n++
	}
	return n
}

// HideAll hides every route.
func (t *Table) HideAll() {
	for _, r := range t.routes {
		r.hidden = true
	}
}

// Visible yields the routes that should be drawn.
func (t *Table) Visible() iter.Seq[*Route] {
	return func(yield func(*Route) bool) {
		for _, r := range t.routes {
			if !r.hidden && r.Drawable() && !yield(r) {
				return
			}
		}
	}
}

func (t *Table) Routes() []*Route { return t.routes }

func (t *Table) Len() int { return len(t.routes) }

// DrawableCount returns how many routes carry geometry.
func (t *Table) DrawableCount() int {
	n := 0
	for _, r := range t.routes {
		if r.Drawable() {
			n++
		}
	}
	return n
}
