// Package viewport keeps the overview map's viewport rectangle in step with
// the detail map.
package viewport

import "airmap/internal/marker"

// Point is a screen position.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned screen rectangle. W and H are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.Y > r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Projector converts an overview screen position to a geographic location.
type Projector interface {
	ScreenToGeo(x, y float64) marker.Location
}

// Panner centers the detail map on a location.
type Panner interface {
	PanTo(loc marker.Location)
}

// Sync derives the viewport rectangle from the detail map and turns drags of
// the rectangle into pan commands for the detail map.
type Sync struct {
	overview Projector
	detail   Panner

	rect     Rect
	dragging bool
	grab     Point
}

func New(overview Projector, detail Panner) *Sync {
	return &Sync{overview: overview, detail: detail}
}

// SyncFromDetailView sets the rectangle from the detail map's corners, given
// in overview screen space. Inverted corners give a zero-size rectangle.
func (s *Sync) SyncFromDetailView(tl, br Point) Rect {
	s.rect = Rect{
		X: tl.X,
		Y: tl.Y,
		W: max(0, br.X-tl.X),
		H: max(0, br.Y-tl.Y),
	}
	return s.rect
}

// StartDrag begins a drag if p is over the rectangle.
func (s *Sync) StartDrag(p Point) bool {
	if !s.rect.Contains(p) {
		return false
	}
	s.dragging = true
	s.grab = Point{X: p.X - s.rect.X, Y: p.Y - s.rect.Y}
	return true
}

// OnDrag moves the rectangle with the pointer and pans the detail map to the
// rectangle's new center. It does nothing unless a drag is in progress.
func (s *Sync) OnDrag(p Point) {
	if !s.dragging {
		return
	}
	s.rect.X = p.X - s.grab.X
	s.rect.Y = p.Y - s.grab.Y
	c := s.rect.Center()
	s.detail.PanTo(s.overview.ScreenToGeo(c.X, c.Y))
}

func (s *Sync) EndDrag() { s.dragging = false }

func (s *Sync) Dragging() bool { return s.dragging }

func (s *Sync) Rect() Rect { return s.rect }
