package geom

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sf "github.com/peterstace/simplefeatures/geom"
)

// LoadCountries reads country outlines from a GeoJSON FeatureCollection.
// Polygon and MultiPolygon features are kept; other geometries are ignored.
func LoadCountries(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	d, err := ReadCountries(f)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadCountries decodes a FeatureCollection. Geometries are built without
// validation since outlines are only drawn; features whose geometry still
// cannot be decoded are skipped.
func ReadCountries(r io.Reader) (Data, error) {
	var fc struct {
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
			Geometry   json.RawMessage        `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return Data{}, err
	}

	var d Data
	empty := true
	addPoly := func(p sf.Polygon, name string) {
		if p.IsEmpty() {
			return
		}
		rings := make([][][2]float64, 0, 1+p.NumInteriorRings())
		rings = append(rings, ringCoords(p.ExteriorRing()))
		for i := 0; i < p.NumInteriorRings(); i++ {
			rings = append(rings, ringCoords(p.InteriorRingN(i)))
		}
		for _, pt := range rings[0] {
			d.BBox.Extend(pt[0], pt[1], empty)
			empty = false
		}
		d.Polygons = append(d.Polygons, rings)
		d.Names = append(d.Names, name)
	}

	for _, feat := range fc.Features {
		if len(feat.Geometry) == 0 {
			continue
		}
		g, err := sf.UnmarshalGeoJSON(feat.Geometry, sf.DisableAllValidations)
		if err != nil {
			continue
		}
		name := featureName(feat.Properties)
		switch g.Type() {
		case sf.TypePolygon:
			addPoly(g.MustAsPolygon(), name)
		case sf.TypeMultiPolygon:
			mp := g.MustAsMultiPolygon()
			for i := 0; i < mp.NumPolygons(); i++ {
				addPoly(mp.PolygonN(i), name)
			}
		}
	}
	if len(d.Polygons) == 0 {
		return Data{}, ErrNoCountries
	}
	return d, nil
}

func ringCoords(ls sf.LineString) [][2]float64 {
	seq := ls.Coordinates()
	out := make([][2]float64, seq.Length())
	for i := range out {
		xy := seq.GetXY(i)
		out[i] = [2]float64{xy.X, xy.Y}
	}
	return out
}

func featureName(props map[string]interface{}) string {
	for _, k := range []string{"name", "NAME", "ADMIN", "admin"} {
		if s, ok := props[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
