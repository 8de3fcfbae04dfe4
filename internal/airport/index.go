// Package airport holds the canonical, de-duplicated set of airport markers.
package airport

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"airmap/internal/marker"
)

// Index owns every airport marker. Markers are kept sorted by code and codes
// are unique.
type Index struct {
	markers []*marker.Marker
}

// Load merges the primary and visited airport lists. A code present in both
// lists takes the visited record; codes only in one list are kept as they are.
// Records without a code are dropped.
func Load(primary, visited []marker.RawAirport) *Index {
	p := sortedUnique(primary)
	v := sortedUnique(visited)

	out := make([]*marker.Marker, 0, len(p)+len(v))
	i, j := 0, 0
	for i < len(p) && j < len(v) {
		switch c := strings.Compare(p[i].Code, v[j].Code); {
		case c < 0:
			out = append(out, marker.New(p[i], false))
			i++
		case c > 0:
			out = append(out, marker.New(v[j], true))
			j++
		default:
			out = append(out, marker.New(v[j], true))
			i++
			j++
		}
	}
	for ; i < len(p); i++ {
		out = append(out, marker.New(p[i], false))
	}
	for ; j < len(v); j++ {
		out = append(out, marker.New(v[j], true))
	}
	return &Index{markers: out}
}

// sortedUnique trims codes, drops code-less records, sorts by code and keeps
// the first record seen for each code.
func sortedUnique(in []marker.RawAirport) []marker.RawAirport {
	out := make([]marker.RawAirport, 0, len(in))
	for _, r := range in {
		r.Code = strings.TrimSpace(r.Code)
		if r.Code == "" {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Code < out[b].Code })
	return slices.CompactFunc(out, func(a, b marker.RawAirport) bool { return a.Code == b.Code })
}

// ByCode looks a marker up by airport code.
func (x *Index) ByCode(code string) (*marker.Marker, bool) {
	i, ok := slices.BinarySearchFunc(x.markers, code, func(m *marker.Marker, c string) int {
		return strings.Compare(m.Code, c)
	})
	if !ok {
		return nil, false
	}
	return x.markers[i], true
}

// SetHidden sets the hidden flag on every marker matching pred.
func (x *Index) SetHidden(pred func(*marker.Marker) bool, value bool) {
	for _, m := range x.markers {
		if pred(m) {
			m.SetHidden(value)
		}
	}
}

// Markers returns the markers in stored (code) order. The slice is shared.
func (x *Index) Markers() []*marker.Marker { return x.markers }

// All yields markers in stored order.
func (x *Index) All() iter.Seq[*marker.Marker] {
	return func(yield func(*marker.Marker) bool) {
		for _, m := range x.markers {
			if !yield(m) {
				return
			}
		}
	}
}

func (x *Index) Len() int { return len(x.markers) }

func (x *Index) VisitedCount() int {
	n := 0
	for _, m := range x.markers {
		if m.Visited() {
			n++
		}
	}
	return n
}

// VisitedLocations maps each visited airport code to its location. Route
// endpoints are resolved against it.
func (x *Index) VisitedLocations() map[string]marker.Location {
	out := make(map[string]marker.Location)
	for _, m := range x.markers {
		if m.Visited() {
			out[m.Code] = m.Location
		}
	}
	return out
}

// Search returns markers whose code, city or country contains query,
// case-insensitively, in stored order. An empty query matches everything.
func (x *Index) Search(query string) []*marker.Marker {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(x.markers)
	}
	var out []*marker.Marker
	for _, m := range x.markers {
		if strings.Contains(strings.ToLower(m.Code), q) ||
			strings.Contains(strings.ToLower(m.City), q) ||
			strings.Contains(strings.ToLower(m.Country), q) {
			out = append(out, m)
		}
	}
	return out
}

// NotVisited matches markers outside the visited subset.
func NotVisited(m *marker.Marker) bool { return !m.Visited() }

// IsVisited matches markers in the visited subset.
func IsVisited(m *marker.Marker) bool { return m.Visited() }

// Any matches every marker.
func Any(*marker.Marker) bool { return true }
