// Package projection maps geographic locations onto a rectangular screen
// using Web Mercator (EPSG:3857).
package projection

import (
	"math"

	"github.com/wroge/wgs84"

	"airmap/internal/marker"
)

const (
	// originShift is half the Web Mercator world width in meters.
	originShift = 20037508.342789244
	maxLat      = 85.05112878
)

type transform func(a, b, c float64) (float64, float64, float64)

// View is a Mercator window of a given pixel size centered on a location.
// Pixel units are whatever the renderer draws in.
type View struct {
	center   marker.Location
	zoom     float64
	minZoom  float64
	maxZoom  float64
	tileSize float64
	width    int
	height   int

	toMerc   transform
	fromMerc transform
}

// Config describes the initial state of a View.
type Config struct {
	Center   marker.Location
	Zoom     float64
	MinZoom  float64
	MaxZoom  float64
	TileSize float64 // world width in pixels at zoom 0
	Width    int
	Height   int
}

func New(cfg Config) *View {
	epsg := wgs84.EPSG()
	v := &View{
		minZoom:  cfg.MinZoom,
		maxZoom:  cfg.MaxZoom,
		tileSize: cfg.TileSize,
		toMerc:   transform(epsg.Transform(4326, 3857)),
		fromMerc: transform(epsg.Transform(3857, 4326)),
	}
	if v.tileSize <= 0 {
		v.tileSize = 256
	}
	if v.maxZoom < v.minZoom {
		v.minZoom, v.maxZoom = v.maxZoom, v.minZoom
	}
	v.Resize(cfg.Width, cfg.Height)
	v.SetZoom(cfg.Zoom)
	v.PanTo(cfg.Center)
	return v
}

// Resize sets the screen size. Sizes below one pixel are raised to one.
func (v *View) Resize(w, h int) {
	v.width = max(1, w)
	v.height = max(1, h)
}

func (v *View) Size() (int, int)        { return v.width, v.height }
func (v *View) Center() marker.Location { return v.center }
func (v *View) Zoom() float64           { return v.zoom }

// SetZoom sets the zoom level, clamped to the view's range when one is set.
func (v *View) SetZoom(z float64) {
	if v.maxZoom > 0 {
		z = math.Min(math.Max(z, v.minZoom), v.maxZoom)
	}
	v.zoom = z
}

// ZoomBy changes the zoom level by delta.
func (v *View) ZoomBy(delta float64) { v.SetZoom(v.zoom + delta) }

// PanTo centers the view on loc.
func (v *View) PanTo(loc marker.Location) {
	loc.Lat = math.Min(math.Max(loc.Lat, -maxLat), maxLat)
	v.center = loc
}

// PanBy moves the center by a number of pixels.
func (v *View) PanBy(dx, dy float64) {
	w, h := float64(v.width), float64(v.height)
	v.PanTo(v.ScreenToGeo(w/2+dx, h/2+dy))
}

// FitWorld zooms out so that the whole Mercator square fits the screen and
// centers the view on 0,0. It ignores the zoom range.
func (v *View) FitWorld() {
	side := float64(min(v.width, v.height))
	v.zoom = math.Log2(side / v.tileSize)
	v.center = marker.Location{}
}

// metersPerPixel at the current zoom.
func (v *View) metersPerPixel() float64 {
	return 2 * originShift / (v.tileSize * math.Exp2(v.zoom))
}

func (v *View) merc(loc marker.Location) (float64, float64) {
	lat := math.Min(math.Max(loc.Lat, -maxLat), maxLat)
	x, y, _ := v.toMerc(loc.Lon, lat, 0)
	return x, y
}

// GeoToScreen converts a location to screen coordinates, origin top-left.
// Locations outside the view map outside [0,w)x[0,h).
func (v *View) GeoToScreen(loc marker.Location) (float64, float64) {
	mx, my := v.merc(loc)
	cx, cy := v.merc(v.center)
	mpp := v.metersPerPixel()
	x := float64(v.width)/2 + (mx-cx)/mpp
	y := float64(v.height)/2 - (my-cy)/mpp
	return x, y
}

// ScreenToGeo converts screen coordinates back to a location.
func (v *View) ScreenToGeo(x, y float64) marker.Location {
	cx, cy := v.merc(v.center)
	mpp := v.metersPerPixel()
	mx := cx + (x-float64(v.width)/2)*mpp
	my := cy - (y-float64(v.height)/2)*mpp
	mx = math.Min(math.Max(mx, -originShift), originShift)
	my = math.Min(math.Max(my, -originShift), originShift)
	lon, lat, _ := v.fromMerc(mx, my, 0)
	return marker.Location{Lat: lat, Lon: lon}
}

// TopLeft is the location at the top-left screen corner.
func (v *View) TopLeft() marker.Location { return v.ScreenToGeo(0, 0) }

// BottomRight is the location at the bottom-right screen corner.
func (v *View) BottomRight() marker.Location {
	return v.ScreenToGeo(float64(v.width), float64(v.height))
}

// Visible reports whether loc falls on screen.
func (v *View) Visible(loc marker.Location) bool {
	x, y := v.GeoToScreen(loc)
	return x >= 0 && y >= 0 && x < float64(v.width) && y < float64(v.height)
}
