package fahrinfo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marienplatzJSON = `{
	"type": "station",
	"latitude": 48.03621598164,
	"longitude": 11.21876313932,
	"id": "de:09188:5516",
	"divaId": 5516,
	"place": "Oberalting",
	"name": "Marienplatz",
	"hasLiveData": false,
	"hasZoomData": false,
	"products": ["BUS"],
	"aliases": "",
	"link": null,
	"tariffZones": "3|4",
	"lines": {
		"tram": [],
		"nachttram": [],
		"sbahn": [],
		"ubahn": [],
		"bus": [],
		"nachtbus": [],
		"otherlines": []
	}
}`

func TestLocationStationSample(t *testing.T) {
	var location Location
	require.NoError(t, json.Unmarshal([]byte(marienplatzJSON), &location))

	station, ok := location.AsStation()
	require.True(t, ok)

	assert.Equal(t, LocationTypeStation, location.Type)
	assert.Equal(t, "de:09188:5516", station.ID)
	assert.Equal(t, "Marienplatz", station.Name)
	assert.Equal(t, "Oberalting", station.Place)
	assert.Equal(t, []Product{ProductBus}, station.Products)
	assert.Equal(t, int64(5516), station.DivaID)
	assert.Equal(t, "3|4", station.TariffZones)
	require.NotNil(t, station.Aliases)
	assert.Equal(t, "", *station.Aliases)
	assert.Nil(t, station.Link)
	assert.JSONEq(t, `{"tram":[],"nachttram":[],"sbahn":[],"ubahn":[],"bus":[],"nachtbus":[],"otherlines":[]}`, string(station.Lines))

	assert.Nil(t, location.Address)
	assert.Nil(t, location.Position)
	assert.Equal(t, "Marienplatz", location.Name())
	assert.InDelta(t, 48.03621598164, location.Latitude(), 1e-12)
}

func TestLocationAddressAndPosition(t *testing.T) {
	var address Location
	require.NoError(t, json.Unmarshal([]byte(`{"type":"address","latitude":48.1,"longitude":11.5,"place":"München","street":"Kaufingerstraße 1","poi":true}`), &address))

	a, ok := address.AsAddress()
	require.True(t, ok)
	assert.Equal(t, "Kaufingerstraße 1", a.Street)
	assert.True(t, a.POI)
	assert.Equal(t, "Kaufingerstraße 1, München", address.Name())

	var position Location
	require.NoError(t, json.Unmarshal([]byte(`{"type":"location","latitude":48.137,"longitude":11.575}`), &position))

	p, ok := position.AsPosition()
	require.True(t, ok)
	assert.Equal(t, 48.137, p.Latitude)
	assert.Equal(t, 11.575, position.Longitude())
	assert.Empty(t, position.Name())

	_, ok = position.AsStation()
	assert.False(t, ok)
}

func TestLocationUnknownType(t *testing.T) {
	var location Location
	err := json.Unmarshal([]byte(`{"type":"poi","latitude":1,"longitude":2}`), &location)
	require.Error(t, err)

	var variantErr *UnknownVariantError
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, "Location", variantErr.Union)
	assert.Equal(t, "poi", variantErr.Value)
}

func TestLocationMissingTypeAndFields(t *testing.T) {
	var location Location
	var missing *MissingFieldError

	err := json.Unmarshal([]byte(`{"latitude":1,"longitude":2}`), &location)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "type", missing.Field)

	err = json.Unmarshal([]byte(`{"type":"address","latitude":1,"longitude":2,"place":"x","poi":false}`), &location)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Address", missing.Type)
	assert.Equal(t, "street", missing.Field)

	err = json.Unmarshal([]byte(`{"type":"station","latitude":1,"longitude":2,"id":null}`), &location)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Station", missing.Type)
}

func TestStationNullLines(t *testing.T) {
	var location Location
	require.NoError(t, json.Unmarshal([]byte(`{"type":"station","latitude":1,"longitude":2,"id":"de:09162:2","divaId":2,"place":"München","name":"Marienplatz","hasLiveData":true,"hasZoomData":true,"products":[],"tariffZones":"m","lines":null}`), &location))

	station, ok := location.AsStation()
	require.True(t, ok)
	assert.Equal(t, json.RawMessage("null"), station.Lines)
	assert.Nil(t, station.Aliases)

	err := json.Unmarshal([]byte(`{"type":"station","latitude":1,"longitude":2,"id":"de:09162:2","divaId":2,"place":"München","name":"Marienplatz","hasLiveData":true,"hasZoomData":true,"products":[],"tariffZones":"m"}`), &location)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "lines", missing.Field)
}

func TestStationOptionalFieldsEncodeNull(t *testing.T) {
	encoded, err := json.Marshal(NewStationLocation(Station{ID: "de:09162:2", Lines: json.RawMessage(`{}`)}))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Equal(t, json.RawMessage("null"), fields["aliases"])
	assert.Equal(t, json.RawMessage("null"), fields["link"])
}

func TestLocationWrongScalarType(t *testing.T) {
	var location Location
	err := json.Unmarshal([]byte(`{"type":"location","latitude":"north","longitude":2}`), &location)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "latitude", typeErr.Field)
}

func TestLocationRoundTrip(t *testing.T) {
	inputs := []string{
		marienplatzJSON,
		`{"type":"address","latitude":48.1,"longitude":11.5,"place":"München","street":"Sendlinger Str. 3","poi":false}`,
		`{"type":"location","latitude":48.137,"longitude":11.575}`,
		`{"type":"station","latitude":1,"longitude":2,"id":"de:09162:2","divaId":2,"place":"München","name":"Marienplatz","hasLiveData":true,"hasZoomData":true,"products":["UBAHN","SBAHN"],"aliases":null,"link":"MP","tariffZones":"m","lines":null}`,
	}

	for _, input := range inputs {
		var location Location
		require.NoError(t, json.Unmarshal([]byte(input), &location))

		encoded, err := json.Marshal(location)
		require.NoError(t, err)

		assert.JSONEq(t, input, string(encoded))
	}
}

func TestLocationMarshalWithoutPayload(t *testing.T) {
	_, err := json.Marshal(Location{Type: LocationTypeStation})
	assert.Error(t, err)

	_, err = json.Marshal(Location{})
	var variantErr *UnknownVariantError
	assert.ErrorAs(t, err, &variantErr)
}

func TestStationsFilter(t *testing.T) {
	var envelope Locations
	require.NoError(t, json.Unmarshal([]byte(`{"locations":[
		{"type":"address","latitude":1,"longitude":2,"place":"p","street":"s","poi":false},
		`+marienplatzJSON+`,
		{"type":"location","latitude":1,"longitude":2}
	]}`), &envelope))

	require.Len(t, envelope.Locations, 3)

	stations := Stations(envelope.Locations)
	require.Len(t, stations, 1)
	assert.Equal(t, "de:09188:5516", stations[0].ID)
}

func TestLocationsEnvelopeRequiresList(t *testing.T) {
	var envelope Locations
	err := json.Unmarshal([]byte(`{"servingLines":[],"departures":[]}`), &envelope)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "locations", missing.Field)
}
