package departurefilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mvg/pkg/fahrinfo"
)

var now = time.UnixMilli(1700000000000)

func board() []fahrinfo.Departure {
	return []fahrinfo.Departure{
		{DepartureTime: 1700000000000 + 12*60000, Product: fahrinfo.ProductBus, Label: "52", Destination: "Tierpark", Live: true},
		{DepartureTime: 1700000000000 + 2*60000, Product: fahrinfo.ProductUBahn, Label: "U3", Destination: "Moosach", Platform: "2"},
		{DepartureTime: 1700000000000 + 5*60000, Product: fahrinfo.ProductSBahn, Label: "S1", Destination: "Freising", Cancelled: true},
		{DepartureTime: 1700000000000 + 5*60000, Product: fahrinfo.ProductUBahn, Label: "U6", Destination: "Garching", Sev: true},
	}
}

func labels(departures []fahrinfo.Departure) []string {
	var out []string
	for _, departure := range departures {
		out = append(out, departure.Label)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	filter, err := Compile(`product == "UBAHN" && minutes < 10`)
	require.NoError(t, err)

	departures := board()
	require.NoError(t, filter.Apply(&departures, now))
	assert.Equal(t, []string{"U3", "U6"}, labels(departures))
}

func TestFilterFields(t *testing.T) {
	cases := map[string][]string{
		`live`:                           {"52"},
		`cancelled`:                      {"S1"},
		`sev`:                            {"U6"},
		`platform == "2"`:                {"U3"},
		`destination startsWith "F"`:     {"S1"},
		`label in ["52", "S1"]`:          {"52", "S1"},
		`not cancelled && minutes >= 5`:  {"52", "U6"},
		`minutes == 12 || label == "U3"`: {"52", "U3"},
	}

	for source, expected := range cases {
		filter, err := Compile(source)
		require.NoError(t, err, source)

		departures := board()
		require.NoError(t, filter.Apply(&departures, now), source)
		assert.Equal(t, expected, labels(departures), source)
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	filter, err := Compile("   ")
	require.NoError(t, err)

	departures := board()
	require.NoError(t, filter.Apply(&departures, now))
	assert.Len(t, departures, 4)
}

func TestCompileRejectsInvalid(t *testing.T) {
	_, err := Compile(`product ==`)
	assert.Error(t, err)

	_, err = Compile(`minutes + 1`)
	assert.Error(t, err)

	_, err = Compile(`vehicle == "tram"`)
	assert.Error(t, err)
}

func TestByProducts(t *testing.T) {
	departures := board()
	ByProducts(&departures, []fahrinfo.Product{fahrinfo.ProductSBahn, fahrinfo.ProductBus})
	assert.Equal(t, []string{"52", "S1"}, labels(departures))

	departures = board()
	ByProducts(&departures, nil)
	assert.Len(t, departures, 4)
}

func TestParseProducts(t *testing.T) {
	products, err := ParseProducts("ubahn, SBAHN,,UBAHN")
	require.NoError(t, err)
	assert.Equal(t, []fahrinfo.Product{fahrinfo.ProductUBahn, fahrinfo.ProductSBahn}, products)

	_, err = ParseProducts("UBAHN,SCHIFF")
	var unknown *fahrinfo.UnknownVariantError
	assert.ErrorAs(t, err, &unknown)
}

func TestSortByTime(t *testing.T) {
	departures := board()
	SortByTime(departures)
	assert.Equal(t, []string{"U3", "S1", "U6", "52"}, labels(departures))
}
