package geom

import "errors"

var (
	ErrNoAirports        = errors.New("no airports found")
	ErrNoRoutes          = errors.New("no routes found")
	ErrNoCountries       = errors.New("no country polygons found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include (x, y). With empty set, the box is reset
// to the point instead.
func (b *BBox) Extend(x, y float64, empty bool) {
	if empty {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
}

// Data is a minimal geometry container for rendering
type Data struct {
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes), lon/lat
	Names    []string         // one per polygon, may be empty
	BBox     BBox
}
