package mvg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mvg/pkg/fahrinfo"
)

func TestDecodeLocations(t *testing.T) {
	locations, err := Decode[fahrinfo.Locations]([]byte(`{"locations":[{"type":"location","latitude":48.1,"longitude":11.5}]}`))
	require.NoError(t, err)
	require.Len(t, locations.Locations, 1)

	position, ok := locations.Locations[0].AsPosition()
	require.True(t, ok)
	assert.Equal(t, 48.1, position.Latitude)
}

func TestDecodeStation(t *testing.T) {
	station, err := Decode[fahrinfo.Station]([]byte(stationJSON("de:09162:2", "Marienplatz")))
	require.NoError(t, err)
	assert.Equal(t, "Marienplatz", station.Name)
	assert.Equal(t, []fahrinfo.Product{fahrinfo.ProductUBahn}, station.Products)
	assert.Nil(t, station.Aliases)
}

func TestDecodeDepartureInfo(t *testing.T) {
	info, err := Decode[fahrinfo.DepartureInfo]([]byte(departuresJSON))
	require.NoError(t, err)
	require.Len(t, info.Departures, 1)
	assert.Equal(t, "#ec6726", info.Departures[0].LineBackgroundColor)
	assert.Equal(t, uint8(1), info.Departures[0].StopPositionNumber)
}

func TestDecodeConnectionList(t *testing.T) {
	fixture, err := os.ReadFile("testdata/connections.json")
	require.NoError(t, err)

	list, err := Decode[fahrinfo.ConnectionList](fixture)
	require.NoError(t, err)
	require.Len(t, list.ConnectionList, 1)

	connection := list.ConnectionList[0]
	assert.Equal(t, int64(987654321), connection.ServerID)
	assert.Equal(t, fahrinfo.PartTypeFootway, connection.ConnectionPartList[0].Type)
	assert.Equal(t, fahrinfo.PartTypeTransportation, connection.ConnectionPartList[1].Type)
}

func TestDecodeErrorKind(t *testing.T) {
	_, err := Decode[fahrinfo.DepartureInfo]([]byte(`{"servingLines":[]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	var missing *fahrinfo.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "departures", missing.Field)

	var mvgErr *Error
	require.ErrorAs(t, err, &mvgErr)
	assert.Empty(t, mvgErr.Subject)

	_, err = Decode[fahrinfo.Locations]([]byte(`{"locations":[{"type":"harbour","latitude":1,"longitude":2}]}`))
	var unknown *fahrinfo.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "harbour", unknown.Value)
}
