package geom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"

	"airmap/internal/marker"
)

// LoadAirportsShapefile reads airport points from a Natural Earth style
// shapefile (ne_10m_airports). The code comes from the iata_code attribute,
// falling back to gps_code; the name attribute is used as the city.
func LoadAirportsShapefile(path string) ([]marker.RawAirport, error) {
	shapeFile, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport shapefile: %w", err)
	}
	defer shapeFile.Close()

	iata, gps, name := -1, -1, -1
	for i, f := range shapeFile.Fields() {
		switch strings.ToLower(f.String()) {
		case "iata_code":
			iata = i
		case "gps_code":
			gps = i
		case "name":
			name = i
		}
	}
	if iata == -1 && gps == -1 {
		return nil, fmt.Errorf("%s: no iata_code or gps_code attribute", path)
	}

	attr := func(n, i int) string {
		if i < 0 {
			return ""
		}
		return strings.TrimSpace(strings.Trim(shapeFile.ReadAttribute(n, i), "\x00"))
	}

	var out []marker.RawAirport
	for shapeFile.Next() {
		n, shape := shapeFile.Shape()
		point, ok := shape.(*shp.Point)
		if !ok {
			continue // Skip if it's not a point (e.g., polygon, polyline)
		}
		code := attr(n, iata)
		if code == "" {
			code = attr(n, gps)
		}
		if code == "" {
			continue
		}
		out = append(out, marker.RawAirport{
			Code: code,
			City: attr(n, name),
			Lat:  point.Y,
			Lon:  point.X,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAirports)
	}
	return out, nil
}

// LoadAirportsAny picks a loader by file extension.
func LoadAirportsAny(path string) ([]marker.RawAirport, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return LoadAirportsShapefile(path)
	case ".dat", ".csv", ".txt":
		return LoadAirports(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
