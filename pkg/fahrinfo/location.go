// Package fahrinfo holds the typed model of the MVG fahrinfo API payloads.
//
// Locations and connection parts are tagged unions on the wire. They are
// modelled as a tag plus exactly one non-nil variant pointer, and decoding
// fails on any tag outside the known set.
package fahrinfo

import (
	"bytes"
	"encoding/json"
	"errors"
)

type LocationType string

const (
	LocationTypeStation  LocationType = "station"
	LocationTypeAddress  LocationType = "address"
	LocationTypePosition LocationType = "location"
)

type Location struct {
	Type LocationType

	Station  *Station
	Address  *Address
	Position *Position
}

type Station struct {
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	ID          string          `json:"id"`
	DivaID      int64           `json:"divaId"`
	Place       string          `json:"place"`
	Name        string          `json:"name"`
	HasLiveData bool            `json:"hasLiveData"`
	HasZoomData bool            `json:"hasZoomData"`
	Products    []Product       `json:"products"`
	Aliases     *string         `json:"aliases"`
	Link        *string         `json:"link"`
	TariffZones string          `json:"tariffZones"`
	Lines       json.RawMessage `json:"lines"`
}

var stationFields = []string{
	"latitude", "longitude", "id", "divaId", "place", "name",
	"hasLiveData", "hasZoomData", "products", "tariffZones", "lines",
}

type Address struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Place     string  `json:"place"`
	Street    string  `json:"street"`
	POI       bool    `json:"poi"`
}

var addressFields = []string{"latitude", "longitude", "place", "street", "poi"}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var positionFields = []string{"latitude", "longitude"}

type Locations struct {
	Locations []Location `json:"locations"`
}

func NewStationLocation(station Station) Location {
	return Location{Type: LocationTypeStation, Station: &station}
}

func NewAddressLocation(address Address) Location {
	return Location{Type: LocationTypeAddress, Address: &address}
}

func NewPositionLocation(position Position) Location {
	return Location{Type: LocationTypePosition, Position: &position}
}

func (l Location) AsStation() (*Station, bool) {
	return l.Station, l.Type == LocationTypeStation && l.Station != nil
}

func (l Location) AsAddress() (*Address, bool) {
	return l.Address, l.Type == LocationTypeAddress && l.Address != nil
}

func (l Location) AsPosition() (*Position, bool) {
	return l.Position, l.Type == LocationTypePosition && l.Position != nil
}

func (l Location) Latitude() float64 {
	if station, ok := l.AsStation(); ok {
		return station.Latitude
	}
	if address, ok := l.AsAddress(); ok {
		return address.Latitude
	}
	if position, ok := l.AsPosition(); ok {
		return position.Latitude
	}
	return 0
}

func (l Location) Longitude() float64 {
	if station, ok := l.AsStation(); ok {
		return station.Longitude
	}
	if address, ok := l.AsAddress(); ok {
		return address.Longitude
	}
	if position, ok := l.AsPosition(); ok {
		return position.Longitude
	}
	return 0
}

// Name is a human readable label for any variant. Bare positions have none.
func (l Location) Name() string {
	if station, ok := l.AsStation(); ok {
		return station.Name
	}
	if address, ok := l.AsAddress(); ok {
		if address.Place == "" {
			return address.Street
		}
		return address.Street + ", " + address.Place
	}
	return ""
}

// Stations keeps only the station variants, in order.
func Stations(locations []Location) []*Station {
	var stations []*Station
	for _, location := range locations {
		if station, ok := location.AsStation(); ok {
			stations = append(stations, station)
		}
	}
	return stations
}

func (s *Station) UnmarshalJSON(data []byte) error {
	if err := requireFields("Station", data, stationFields, "lines"); err != nil {
		return err
	}

	type station Station
	return json.Unmarshal(data, (*station)(s))
}

func (a *Address) UnmarshalJSON(data []byte) error {
	if err := requireFields("Address", data, addressFields); err != nil {
		return err
	}

	type address Address
	return json.Unmarshal(data, (*address)(a))
}

func (p *Position) UnmarshalJSON(data []byte) error {
	if err := requireFields("Position", data, positionFields); err != nil {
		return err
	}

	type position Position
	return json.Unmarshal(data, (*position)(p))
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Type == nil {
		return &MissingFieldError{Type: "Location", Field: "type"}
	}

	switch LocationType(*tag.Type) {
	case LocationTypeStation:
		var station Station
		if err := json.Unmarshal(data, &station); err != nil {
			return err
		}
		*l = NewStationLocation(station)
	case LocationTypeAddress:
		var address Address
		if err := json.Unmarshal(data, &address); err != nil {
			return err
		}
		*l = NewAddressLocation(address)
	case LocationTypePosition:
		var position Position
		if err := json.Unmarshal(data, &position); err != nil {
			return err
		}
		*l = NewPositionLocation(position)
	default:
		return &UnknownVariantError{Union: "Location", Discriminator: "type", Value: *tag.Type}
	}

	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	switch l.Type {
	case LocationTypeStation:
		if l.Station != nil {
			return marshalTagged("type", string(l.Type), l.Station)
		}
	case LocationTypeAddress:
		if l.Address != nil {
			return marshalTagged("type", string(l.Type), l.Address)
		}
	case LocationTypePosition:
		if l.Position != nil {
			return marshalTagged("type", string(l.Type), l.Position)
		}
	default:
		return nil, &UnknownVariantError{Union: "Location", Discriminator: "type", Value: string(l.Type)}
	}

	return nil, errors.New("location has no payload for type " + string(l.Type))
}

// marshalTagged encodes v as an object with the discriminator as its first key.
func marshalTagged(key string, tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	keyJSON, _ := json.Marshal(key)
	tagJSON, _ := json.Marshal(tag)

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(keyJSON)
	buf.WriteByte(':')
	buf.Write(tagJSON)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1 : len(body)-1])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
