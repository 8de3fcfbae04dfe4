// Package app loads the configured geo data into the airport index and route
// table the map works on.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	sf "github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"

	"airmap/internal/airport"
	"airmap/internal/config"
	"airmap/internal/geom"
	"airmap/internal/marker"
	"airmap/internal/route"
)

var ErrUnknownAirport = errors.New("unknown airport code")

// Dataset is everything the map shows.
type Dataset struct {
	Index     *airport.Index
	Routes    *route.Table
	Countries geom.Data
}

// Load reads the files named in cfg. The primary airport file is required;
// the visited, routes and countries files may be missing, in which case the
// corresponding part of the dataset is empty.
func Load(cfg config.DataConfig, log zerolog.Logger) (*Dataset, error) {
	primary, err := geom.LoadAirportsAny(cfg.Airports)
	if err != nil {
		return nil, fmt.Errorf("failed to load airports: %w", err)
	}

	visited, err := optional(log, "visited", cfg.Visited, geom.LoadAirportsAny)
	if err != nil {
		return nil, fmt.Errorf("failed to load visited airports: %w", err)
	}

	idx := airport.Load(primary, visited)
	log.Info().
		Int("primary", len(primary)).
		Int("visited", len(visited)).
		Int("markers", idx.Len()).
		Msg("airports loaded")

	raw, err := optional(log, "routes", cfg.Routes, geom.LoadRoutes)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}
	routes := route.Load(raw, idx.VisitedLocations())
	log.Info().
		Int("routes", routes.Len()).
		Int("drawable", routes.DrawableCount()).
		Msg("routes loaded")

	ds := &Dataset{Index: idx, Routes: routes}
	if cfg.Countries != "" {
		countries, err := geom.LoadCountries(cfg.Countries)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn().Str("path", cfg.Countries).Msg("countries file not found, drawing without outlines")
		case err != nil:
			log.Warn().Err(err).Str("path", cfg.Countries).Msg("failed to load countries, drawing without outlines")
		default:
			ds.Countries = countries
			log.Info().Int("polygons", len(countries.Polygons)).Msg("countries loaded")
		}
	}
	return ds, nil
}

// optional runs load unless path is empty or names a file that does not
// exist.
func optional[T any](log zerolog.Logger, what, path string, load func(string) ([]T, error)) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	out, err := load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", path).Msgf("%s file not found, skipping", what)
		return nil, nil
	}
	return out, err
}

// RoutesGeoJSON returns the drawable routes touching code as a GeoJSON
// FeatureCollection of LineStrings.
func (d *Dataset) RoutesGeoJSON(code string) ([]byte, error) {
	if _, ok := d.Index.ByCode(code); !ok {
		return nil, fmt.Errorf("%q: %w", code, ErrUnknownAirport)
	}
	fc := sf.GeoJSONFeatureCollection{}
	for r := range d.Routes.RoutesFor(code) {
		ls, ok := r.LineString()
		if !ok {
			continue
		}
		fc = append(fc, sf.GeoJSONFeature{
			Geometry: ls.AsGeometry(),
			Properties: map[string]interface{}{
				"source": r.Source,
				"dest":   r.Dest,
			},
		})
	}
	return json.Marshal(fc)
}

// Summary counts the dataset for display.
type Summary struct {
	Airports  int
	Visited   int
	Routes    int
	Drawable  int
	Countries int
}

func (d *Dataset) Summary() Summary {
	return Summary{
		Airports:  d.Index.Len(),
		Visited:   d.Index.VisitedCount(),
		Routes:    d.Routes.Len(),
		Drawable:  d.Routes.DrawableCount(),
		Countries: len(d.Countries.Polygons),
	}
}

// VisitedMarkers returns the visited markers in code order.
func (d *Dataset) VisitedMarkers() []*marker.Marker {
	var out []*marker.Marker
	for m := range d.Index.All() {
		if m.Visited() {
			out = append(out, m)
		}
	}
	return out
}
