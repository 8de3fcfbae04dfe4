package airport

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airmap/internal/marker"
)

func raw(code, city string) marker.RawAirport {
	return marker.RawAirport{Code: code, City: city, Country: "Testland", Lat: 1, Lon: 2}
}

func TestLoad_ExampleScenario(t *testing.T) {
	primary := []marker.RawAirport{raw("JFK", "New York"), raw("LAX", "Los Angeles")}
	visited := []marker.RawAirport{raw("JFK", "New York")}

	idx := Load(primary, visited)

	require.Equal(t, 2, idx.Len())
	jfk, ok := idx.ByCode("JFK")
	require.True(t, ok)
	assert.True(t, jfk.Visited())
	lax, ok := idx.ByCode("LAX")
	require.True(t, ok)
	assert.False(t, lax.Visited())
}

func TestLoad_VisitedOverridesPrimaryAttributes(t *testing.T) {
	primary := []marker.RawAirport{{Code: "CDG", City: "Paris", Altitude: 1, Lat: 49, Lon: 2.5}}
	visited := []marker.RawAirport{{Code: "CDG", City: "Paris-Roissy", Altitude: 392, Lat: 49.01, Lon: 2.55}}

	idx := Load(primary, visited)

	m, ok := idx.ByCode("CDG")
	require.True(t, ok)
	assert.True(t, m.Visited())
	assert.Equal(t, marker.KindPlane, m.Kind)
	assert.Equal(t, "Paris-Roissy", m.City)
	assert.Equal(t, 392, m.Altitude)
	assert.Equal(t, marker.Location{Lat: 49.01, Lon: 2.55}, m.Location)
}

func TestLoad_VisitedOnlyIsAppended(t *testing.T) {
	idx := Load([]marker.RawAirport{raw("AAA", "")}, []marker.RawAirport{raw("ZZZ", "")})

	require.Equal(t, 2, idx.Len())
	z, ok := idx.ByCode("ZZZ")
	require.True(t, ok)
	assert.True(t, z.Visited())
	assert.Equal(t, 1, idx.VisitedCount())
}

func TestLoad_SortedAndUnique(t *testing.T) {
	primary := []marker.RawAirport{raw("SYD", "a"), raw("AKL", "b"), raw("SYD", "dup"), raw("MEL", "c")}
	visited := []marker.RawAirport{raw("MEL", "v"), raw("BNE", "v"), raw("BNE", "dup")}

	idx := Load(primary, visited)

	var codes []string
	for m := range idx.All() {
		codes = append(codes, m.Code)
	}
	assert.Equal(t, []string{"AKL", "BNE", "MEL", "SYD"}, codes)

	syd, _ := idx.ByCode("SYD")
	assert.Equal(t, "a", syd.City, "first occurrence of a duplicate code wins")
	bne, _ := idx.ByCode("BNE")
	assert.Equal(t, "v", bne.City)
}

func TestLoad_DropsRecordsWithoutCode(t *testing.T) {
	idx := Load([]marker.RawAirport{raw("", "nowhere"), raw("  ", "blank"), raw("OSL", "Oslo")}, []marker.RawAirport{raw("", "x")})

	require.Equal(t, 1, idx.Len())
	for m := range idx.All() {
		assert.NotEmpty(t, m.Code)
	}
}

func TestLoad_TrimsCodes(t *testing.T) {
	idx := Load([]marker.RawAirport{raw("JFK", "primary")}, []marker.RawAirport{raw(" JFK ", "visited")})

	require.Equal(t, 1, idx.Len())
	jfk, ok := idx.ByCode("JFK")
	require.True(t, ok)
	assert.True(t, jfk.Visited())
	assert.Equal(t, "visited", jfk.City)
	assert.Contains(t, idx.VisitedLocations(), "JFK")
}

func TestLoad_UniquenessProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	code := func() string { return fmt.Sprintf("C%02d", r.Intn(40)) }
	var primary, visited []marker.RawAirport
	for i := 0; i < 200; i++ {
		primary = append(primary, raw(code(), "p"))
	}
	for i := 0; i < 50; i++ {
		visited = append(visited, raw(code(), "v"))
	}
	inVisited := map[string]bool{}
	for _, v := range visited {
		inVisited[v.Code] = true
	}

	idx := Load(primary, visited)

	seen := map[string]bool{}
	prev := ""
	for m := range idx.All() {
		assert.False(t, seen[m.Code], "duplicate code %s", m.Code)
		seen[m.Code] = true
		assert.Less(t, prev, m.Code)
		prev = m.Code
		assert.Equal(t, inVisited[m.Code], m.Visited(), "visited flag for %s", m.Code)
		if inVisited[m.Code] {
			assert.Equal(t, "v", m.City)
		}
	}
}

func TestByCode_Unknown(t *testing.T) {
	idx := Load([]marker.RawAirport{raw("JFK", "")}, nil)

	m, ok := idx.ByCode("XXX")
	assert.False(t, ok)
	assert.Nil(t, m)

	_, ok = Load(nil, nil).ByCode("JFK")
	assert.False(t, ok)
}

func TestSetHidden(t *testing.T) {
	idx := Load([]marker.RawAirport{raw("AAA", ""), raw("BBB", "")}, []marker.RawAirport{raw("CCC", "")})

	idx.SetHidden(NotVisited, true)
	for m := range idx.All() {
		assert.Equal(t, !m.Visited(), m.Hidden(), m.Code)
	}

	idx.SetHidden(Any, false)
	for m := range idx.All() {
		assert.False(t, m.Hidden(), m.Code)
	}
}

func TestVisitedLocations(t *testing.T) {
	idx := Load(
		[]marker.RawAirport{{Code: "AAA", Lat: 1, Lon: 1}},
		[]marker.RawAirport{{Code: "BBB", Lat: 2, Lon: 3}},
	)

	locs := idx.VisitedLocations()
	assert.Equal(t, map[string]marker.Location{"BBB": {Lat: 2, Lon: 3}}, locs)
}

func TestSearch(t *testing.T) {
	idx := Load([]marker.RawAirport{
		{Code: "LHR", City: "London", Country: "United Kingdom"},
		{Code: "LGW", City: "London", Country: "United Kingdom"},
		{Code: "CDG", City: "Paris", Country: "France"},
	}, nil)

	assert.Len(t, idx.Search(""), 3)
	assert.Len(t, idx.Search("london"), 2)
	got := idx.Search("cdg")
	require.Len(t, got, 1)
	assert.Equal(t, "CDG", got[0].Code)
	assert.Empty(t, idx.Search("tokyo"))
}
