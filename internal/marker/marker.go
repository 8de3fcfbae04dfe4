package marker

import "fmt"

// Location is a geographic position in degrees.
type Location struct {
	Lat float64
	Lon float64
}

func (l Location) String() string {
	return fmt.Sprintf("%.5f,%.5f", l.Lat, l.Lon)
}

// Kind selects how the renderer draws a marker. The interaction contract is the
// same for every kind.
type Kind int

const (
	KindAirport Kind = iota
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	default:
		return "airport"
	}
}

// RawAirport is an airport record as produced by a geo-data loader.
type RawAirport struct {
	Code     string
	City     string
	Country  string
	Altitude int
	Lat      float64
	Lon      float64
}

// Marker is an airport on the map. Identity and attributes are fixed at
// construction; only the display flags change afterwards.
type Marker struct {
	Code     string
	City     string
	Country  string
	Altitude int
	Location Location
	Kind     Kind

	visited  bool
	hidden   bool
	selected bool
}

// New builds a marker from a raw record. Visited markers render as planes.
func New(r RawAirport, visited bool) *Marker {
	k := KindAirport
	if visited {
		k = KindPlane
	}
	return &Marker{
		Code:     r.Code,
		City:     r.City,
		Country:  r.Country,
		Altitude: r.Altitude,
		Location: Location{Lat: r.Lat, Lon: r.Lon},
		Kind:     k,
		visited:  visited,
	}
}

func (m *Marker) Visited() bool  { return m.visited }
func (m *Marker) Hidden() bool   { return m.hidden }
func (m *Marker) Selected() bool { return m.selected }

func (m *Marker) SetHidden(v bool)   { m.hidden = v }
func (m *Marker) SetSelected(v bool) { m.selected = v }

// Title is the label shown next to a selected marker.
func (m *Marker) Title() string {
	if m.City == "" {
		return m.Code
	}
	return m.City + " (" + m.Code + ")"
}

func (m *Marker) String() string { return m.Code }
