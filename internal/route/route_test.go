package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airmap/internal/marker"
)

var endpoints = map[string]marker.Location{
	"JFK": {Lat: 40.64, Lon: -73.78},
	"LAX": {Lat: 33.94, Lon: -118.41},
	"LHR": {Lat: 51.47, Lon: -0.45},
}

func collect(t *Table, code string) []*Route {
	var out []*Route
	for r := range t.RoutesFor(code) {
		out = append(out, r)
	}
	return out
}

func TestLoad_ResolvesEndpoints(t *testing.T) {
	tbl := Load([]Raw{{Source: "JFK", Dest: "LAX"}, {Source: "JFK", Dest: "ORD"}}, endpoints)

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, 1, tbl.DrawableCount())

	from, to, ok := tbl.Routes()[0].Endpoints()
	require.True(t, ok)
	assert.Equal(t, endpoints["JFK"], from)
	assert.Equal(t, endpoints["LAX"], to)

	_, _, ok = tbl.Routes()[1].Endpoints()
	assert.False(t, ok)
}

func TestLoad_AllRoutesStartHidden(t *testing.T) {
	tbl := Load([]Raw{{Source: "JFK", Dest: "LAX"}, {Source: "AAA", Dest: "BBB"}}, endpoints)

	for _, r := range tbl.Routes() {
		assert.True(t, r.Hidden())
	}
}

func TestLoad_DropsRecordsWithoutCodes(t *testing.T) {
	tbl := Load([]Raw{{Source: "", Dest: "LAX"}, {Source: "JFK", Dest: " "}, {Source: "JFK", Dest: "LHR"}}, endpoints)

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "LHR", tbl.Routes()[0].Dest)
}

func TestRoutesFor(t *testing.T) {
	tbl := Load([]Raw{
		{Source: "JFK", Dest: "LAX"},
		{Source: "LHR", Dest: "JFK"},
		{Source: "LAX", Dest: "LHR"},
	}, endpoints)

	got := collect(tbl, "JFK")
	require.Len(t, got, 2)
	assert.Equal(t, "LAX", got[0].Dest)
	assert.Equal(t, "LHR", got[1].Source)

	assert.Empty(t, collect(tbl, "XXX"))
}

func TestRoutesFor_Restartable(t *testing.T) {
	tbl := Load([]Raw{{Source: "JFK", Dest: "LAX"}, {Source: "LAX", Dest: "JFK"}}, endpoints)
	seq := tbl.RoutesFor("LAX")

	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, 2, first)
	assert.Equal(t, first, second)

	for range seq {
		break
	}
}

func TestReveal_AndHideAll(t *testing.T) {
	tbl := Load([]Raw{
		{Source: "JFK", Dest: "LAX"},
		{Source: "LAX", Dest: "LHR"},
		{Source: "JFK", Dest: "ORD"},
	}, endpoints)

	n := tbl.Reveal("JFK")
	assert.Equal(t, 1, n)
	assert.False(t, tbl.Routes()[0].Hidden())
	assert.True(t, tbl.Routes()[1].Hidden(), "route not touching JFK stays hidden")
	assert.True(t, tbl.Routes()[2].Hidden(), "route without geometry stays hidden")

	var visible []*Route
	for r := range tbl.Visible() {
		visible = append(visible, r)
	}
	assert.Equal(t, []*Route{tbl.Routes()[0]}, visible)

	tbl.HideAll()
	for _, r := range tbl.Routes() {
		assert.True(t, r.Hidden())
	}
}

func TestLineString(t *testing.T) {
	tbl := Load([]Raw{{Source: "JFK", Dest: "LHR"}, {Source: "JFK", Dest: "ORD"}}, endpoints)

	ls, ok := tbl.Routes()[0].LineString()
	require.True(t, ok)
	seq := ls.Coordinates()
	require.Equal(t, 2, seq.Length())
	assert.Equal(t, -73.78, seq.GetXY(0).X)
	assert.Equal(t, 40.64, seq.GetXY(0).Y)
	assert.Equal(t, -0.45, seq.GetXY(1).X)

	_, ok = tbl.Routes()[1].LineString()
	assert.False(t, ok)
}

func TestLineString_ZeroLength(t *testing.T) {
	tbl := Load([]Raw{{Source: "JFK", Dest: "JFK"}}, endpoints)

	from, to, ok := tbl.Routes()[0].Endpoints()
	require.True(t, ok)
	assert.Equal(t, from, to)

	_, ok = tbl.Routes()[0].LineString()
	assert.False(t, ok)
}
