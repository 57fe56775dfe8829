package mvg

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mvg/pkg/fahrinfo"
)

func TestURLBuilderTemplates(t *testing.T) {
	builder := NewURLBuilder(DefaultBaseURL)

	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/queryWeb?q=Marienplatz", builder.StationsByName("Marienplatz"))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/queryWeb?q=", builder.StationsByName(""))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/departure/de:09162:2?footway=0", builder.StationByID("de:09162:2"))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/departure/de:09162:2?footway=0", builder.Departures("de:09162:2"))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/nearby?latitude=48.137&longitude=11.575", builder.Nearby(48.137, 11.575))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/routing/?fromStation=de:09162:2&toStation=de:09162:6", builder.Routing(RoutingQuery{FromStation: "de:09162:2", ToStation: "de:09162:6"}))
	assert.Equal(t, "https://www.mvg.de/.rest/betriebsaenderungen/api/interruptions", builder.Interruptions())
}

func TestURLBuilderTrimsBase(t *testing.T) {
	builder := NewURLBuilder("http://127.0.0.1:8080/")
	assert.Equal(t, "http://127.0.0.1:8080/api/fahrinfo/departure/x?footway=0", builder.Departures("x"))
}

func TestURLBuilderNearbyFloatFormatting(t *testing.T) {
	builder := NewURLBuilder(DefaultBaseURL)

	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/nearby?latitude=48&longitude=-11.5", builder.Nearby(48, -11.5))
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/nearby?latitude=48.03621598164&longitude=11.21876313932", builder.Nearby(48.03621598164, 11.21876313932))

	// Added at run time; a constant 0.1+0.2 folds to exactly 0.3.
	tenth, fifth := 0.1, 0.2
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/location/nearby?latitude=0.1&longitude=0.30000000000000004", builder.Nearby(tenth, tenth+fifth))
}

func TestURLBuilderRoutingOptions(t *testing.T) {
	builder := NewURLBuilder(DefaultBaseURL)
	changes := 2

	routingURL := builder.Routing(RoutingQuery{
		FromStation:          "de:09162:2",
		ToStation:            "de:09162:6",
		Time:                 time.UnixMilli(1700000000000),
		Arrival:              true,
		MaxWalkToStation:     10 * time.Minute,
		MaxWalkToDestination: 5 * time.Minute,
		ChangeLimit:          &changes,
		ExcludeBus:           true,
		ExcludeTram:          true,
	})

	parsed, err := url.Parse(routingURL)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "/api/fahrinfo/routing/", parsed.Path)
	assert.Equal(t, "de:09162:2", query.Get("fromStation"))
	assert.Equal(t, "de:09162:6", query.Get("toStation"))
	assert.Equal(t, "1700000000000", query.Get("time"))
	assert.Equal(t, "true", query.Get("arrival"))
	assert.Equal(t, "10", query.Get("maxTravelTimeFootwayToStation"))
	assert.Equal(t, "5", query.Get("maxTravelTimeFootwayToDestination"))
	assert.Equal(t, "2", query.Get("changeLimit"))
	assert.Equal(t, "false", query.Get("transportTypeBus"))
	assert.Equal(t, "false", query.Get("transportTypeTram"))
	assert.False(t, query.Has("transportTypeUnderground"))
	assert.False(t, query.Has("transportTypeSBahn"))
}

func TestURLBuilderZeroChangeLimit(t *testing.T) {
	zero := 0
	routingURL := NewURLBuilder(DefaultBaseURL).Routing(RoutingQuery{FromStation: "a", ToStation: "b", ChangeLimit: &zero})
	assert.Equal(t, "https://www.mvg.de/api/fahrinfo/routing/?fromStation=a&toStation=b&changeLimit=0", routingURL)
}

func TestEscapeAll(t *testing.T) {
	assert.Equal(t, "Marienplatz", EscapeAll("Marienplatz"))
	assert.Equal(t, "M%C3%BCnchner%20Freiheit", EscapeAll("Münchner Freiheit"))
	assert.Equal(t, "a%2Db%5Fc%2Ed%7Ee%26f%3Dg%2Bh", EscapeAll("a-b_c.d~e&f=g+h"))
}

func TestEscapeAllRoundTrip(t *testing.T) {
	terms := []string{
		"Münchner Freiheit",
		"Straße der Ölmühle & Co",
		"Giesing (Bf.)",
		"  leading and trailing  ",
		"日本語",
		"100% + 50/50?",
	}

	builder := NewURLBuilder(DefaultBaseURL)
	for _, term := range terms {
		parsed, err := url.Parse(builder.StationsByName(term))
		require.NoError(t, err, term)
		assert.Equal(t, term, parsed.Query().Get("q"))
	}
}

func TestRoutingQueryExclude(t *testing.T) {
	var query RoutingQuery
	require.NoError(t, query.Exclude(fahrinfo.ProductUBahn, fahrinfo.ProductSBahn))
	assert.True(t, query.ExcludeUBahn)
	assert.True(t, query.ExcludeSBahn)
	assert.False(t, query.ExcludeBus)

	assert.EqualError(t, query.Exclude(fahrinfo.ProductBahn), "Regionalbahn cannot be excluded from routing")
}
