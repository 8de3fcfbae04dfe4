package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"airmap/internal/marker"
	"airmap/internal/route"
)

// OpenFlights airports.dat columns.
const (
	colAirportCity     = 2
	colAirportCountry  = 3
	colAirportIATA     = 4
	colAirportICAO     = 5
	colAirportLat      = 6
	colAirportLon      = 7
	colAirportAltitude = 8
)

// OpenFlights routes.dat columns.
const (
	colRouteSource = 2
	colRouteDest   = 4
)

// LoadAirports reads airports from an OpenFlights airports.dat file or a CSV
// with a header row. See ReadAirports.
func LoadAirports(path string) ([]marker.RawAirport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadAirports(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ReadAirports parses airport records. Without a header the OpenFlights column
// layout is assumed; with one, columns are detected by name
// (code|iata|icao, city, country, lat|latitude, lon|lng|longitude,
// alt|altitude|elevation). The code is the IATA code, falling back to ICAO.
// Records without a code or with unparseable coordinates are skipped.
func ReadAirports(r io.Reader) ([]marker.RawAirport, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoAirports
	}
	cols := airportColumns{
		iata: colAirportIATA, icao: colAirportICAO, city: colAirportCity, country: colAirportCountry,
		lat: colAirportLat, lon: colAirportLon, alt: colAirportAltitude,
	}
	if h, ok := detectAirportHeader(recs[0]); ok {
		cols = h
		recs = recs[1:]
	}
	var out []marker.RawAirport
	for _, row := range recs {
		a, ok := cols.parse(row)
		if !ok {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, ErrNoAirports
	}
	return out, nil
}

type airportColumns struct {
	iata, icao, city, country, lat, lon, alt int
}

func detectAirportHeader(header []string) (airportColumns, bool) {
	c := airportColumns{iata: -1, icao: -1, city: -1, country: -1, lat: -1, lon: -1, alt: -1}
	set := func(p *int, i int) {
		if *p == -1 {
			*p = i
		}
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "code", "iata", "iata_code":
			set(&c.iata, i)
		case "icao", "icao_code", "ident":
			set(&c.icao, i)
		case "city", "municipality":
			set(&c.city, i)
		case "country":
			set(&c.country, i)
		case "lat", "latitude", "latitude_deg":
			set(&c.lat, i)
		case "lon", "lng", "long", "longitude", "longitude_deg":
			set(&c.lon, i)
		case "alt", "altitude", "elevation", "elevation_ft":
			set(&c.alt, i)
		}
	}
	if (c.iata == -1 && c.icao == -1) || c.lat == -1 || c.lon == -1 {
		return airportColumns{}, false
	}
	return c, true
}

func (c airportColumns) parse(row []string) (marker.RawAirport, bool) {
	code := field(row, c.iata)
	if code == "" {
		code = field(row, c.icao)
	}
	if code == "" {
		return marker.RawAirport{}, false
	}
	lat, err1 := strconv.ParseFloat(field(row, c.lat), 64)
	lon, err2 := strconv.ParseFloat(field(row, c.lon), 64)
	if err1 != nil || err2 != nil {
		return marker.RawAirport{}, false
	}
	alt := 0
	if s := field(row, c.alt); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return marker.RawAirport{}, false
		}
		alt = int(v)
	}
	return marker.RawAirport{
		Code:     code,
		City:     field(row, c.city),
		Country:  field(row, c.country),
		Altitude: alt,
		Lat:      lat,
		Lon:      lon,
	}, true
}

// LoadRoutes reads an OpenFlights routes.dat file. See ReadRoutes.
func LoadRoutes(path string) ([]route.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadRoutes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ReadRoutes parses route records (airline, airline id, source code, source
// id, destination code, ...). Records missing either airport code are skipped.
func ReadRoutes(r io.Reader) ([]route.Raw, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	var out []route.Raw
	for _, row := range recs {
		src := field(row, colRouteSource)
		dst := field(row, colRouteDest)
		if src == "" || dst == "" {
			continue
		}
		out = append(out, route.Raw{Source: src, Dest: dst})
	}
	if len(out) == 0 {
		return nil, ErrNoRoutes
	}
	return out, nil
}

func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false
	var recs [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, row)
	}
}

// field returns column i of row, trimmed, with the OpenFlights null marker
// mapped to "".
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	s := strings.TrimSpace(row[i])
	if s == `\N` || s == "-" {
		return ""
	}
	return s
}
