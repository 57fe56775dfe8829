package fahrinfo

import (
	"encoding/json"
	"errors"
	"time"
)

type ConnectionList struct {
	ConnectionList []Connection `json:"connectionList"`
}

type Connection struct {
	ZoomNoticeTo       bool             `json:"zoomNoticeTo"`
	ZoomNoticeFrom     bool             `json:"zoomNoticeFrom"`
	From               Location         `json:"from"`
	To                 Location         `json:"to"`
	Departure          int64            `json:"departure"`
	Arrival            int64            `json:"arrival"`
	ConnectionPartList []ConnectionPart `json:"connectionPartList"`
	EfaTicketIDs       []string         `json:"efaTicketIds"`
	ServerID           int64            `json:"serverId"`
	RingFrom           uint8            `json:"ringFrom"`
	RingTo             uint8            `json:"ringTo"`
	OldTarif           bool             `json:"oldTarif"`
	BannerHash         string           `json:"bannerHash"`
}

var connectionFields = []string{
	"zoomNoticeTo", "zoomNoticeFrom", "from", "to", "departure", "arrival",
	"connectionPartList", "efaTicketIds", "serverId", "ringFrom", "ringTo",
	"oldTarif", "bannerHash",
}

type PartType string

const (
	PartTypeTransportation PartType = "TRANSPORTATION"
	PartTypeFootway        PartType = "FOOTWAY"
)

type ConnectionPart struct {
	Type PartType

	Transportation *Transportation
	Footway        *Footway
}

type Transportation struct {
	Stops                       []Stop           `json:"stops"`
	From                        Location         `json:"from"`
	To                          Location         `json:"to"`
	Path                        []Location       `json:"path"`
	PathDescription             []PathDescriptor `json:"pathDescription"`
	InterchangePath             []Location       `json:"interchangePath"`
	Departure                   int64            `json:"departure"`
	Arrival                     int64            `json:"arrival"`
	Delay                       int              `json:"delay"`
	ArrDelay                    int              `json:"arrDelay"`
	Cancelled                   bool             `json:"cancelled"`
	Product                     Product          `json:"product"`
	Label                       string           `json:"label"`
	ServerID                    string           `json:"serverId"`
	Destination                 string           `json:"destination"`
	Sev                         bool             `json:"sev"`
	ZoomNoticeDeparture         bool             `json:"zoomNoticeDeparture"`
	ZoomNoticeArrival           bool             `json:"zoomNoticeArrival"`
	DeparturePlatform           string           `json:"departurePlatform"`
	DepartureStopPositionNumber uint8            `json:"departureStopPositionNumber"`
	ArrivalPlatform             string           `json:"arrivalPlatform"`
	ArrivalStopPositionNumber   uint8            `json:"arrivalStopPositionNumber"`
	NoChangingRequired          bool             `json:"noChangingRequired"`
	FromID                      string           `json:"fromId"`
	DepartureID                 string           `json:"departureId"`
	InfoMessages                []string         `json:"infoMessages"`
}

var transportationFields = []string{
	"stops", "from", "to", "path", "pathDescription", "interchangePath",
	"departure", "arrival", "delay", "arrDelay", "cancelled", "product", "label",
	"serverId", "destination", "sev", "zoomNoticeDeparture", "zoomNoticeArrival",
	"departurePlatform", "departureStopPositionNumber", "arrivalPlatform",
	"arrivalStopPositionNumber", "noChangingRequired", "fromId", "departureId",
}

type Footway struct {
	From                        Location          `json:"from"`
	To                          Location          `json:"to"`
	Path                        []Location        `json:"path"`
	PathDescription             []PathDescriptor  `json:"pathDescription"`
	InterchangePath             []json.RawMessage `json:"interchangePath"`
	Departure                   int64             `json:"departure"`
	Arrival                     int64             `json:"arrival"`
	Cancelled                   bool              `json:"cancelled"`
	ZoomNoticeDeparture         bool              `json:"zoomNoticeDeparture"`
	ZoomNoticeArrival           bool              `json:"zoomNoticeArrival"`
	DepartureStopPositionNumber uint8             `json:"departureStopPositionNumber"`
	ArrivalStopPositionNumber   uint8             `json:"arrivalStopPositionNumber"`
	NoChangingRequired          bool              `json:"noChangingRequired"`
}

var footwayFields = []string{
	"from", "to", "path", "pathDescription", "interchangePath", "departure",
	"arrival", "cancelled", "zoomNoticeDeparture", "zoomNoticeArrival",
	"departureStopPositionNumber", "arrivalStopPositionNumber", "noChangingRequired",
}

type Stop struct {
	Location Location `json:"location"`
	Time     int64    `json:"time"`
	Delay    int      `json:"delay"`
	ArrDelay int      `json:"arrDelay"`
}

var stopFields = []string{"location", "time", "delay", "arrDelay"}

// PathDescriptor maps a slice of the path to a level.
type PathDescriptor struct {
	From  uint8 `json:"from"`
	To    uint8 `json:"to"`
	Level int8  `json:"level"`
}

var pathDescriptorFields = []string{"from", "to", "level"}

func (c Connection) DepartureTime() time.Time {
	return MillisToTime(c.Departure)
}

func (c Connection) ArrivalTime() time.Time {
	return MillisToTime(c.Arrival)
}

func (c Connection) Duration() time.Duration {
	return time.Duration(c.Arrival-c.Departure) * time.Millisecond
}

// Transfers counts changes between transit rides. Footways do not count.
func (c Connection) Transfers() int {
	rides := 0
	for _, part := range c.ConnectionPartList {
		if part.Type == PartTypeTransportation {
			rides++
		}
	}
	if rides == 0 {
		return 0
	}
	return rides - 1
}

func (c *Connection) UnmarshalJSON(data []byte) error {
	if err := requireFields("Connection", data, connectionFields); err != nil {
		return err
	}

	type connection Connection
	if err := json.Unmarshal(data, (*connection)(c)); err != nil {
		return err
	}

	for i := 1; i < len(c.ConnectionPartList); i++ {
		previousArrival := c.ConnectionPartList[i-1].arrival()
		departure := c.ConnectionPartList[i].departure()
		if departure < previousArrival {
			return &OrderError{Index: i, Departure: departure, PreviousArrival: previousArrival}
		}
	}

	return nil
}

func NewTransportationPart(transportation Transportation) ConnectionPart {
	return ConnectionPart{Type: PartTypeTransportation, Transportation: &transportation}
}

func NewFootwayPart(footway Footway) ConnectionPart {
	return ConnectionPart{Type: PartTypeFootway, Footway: &footway}
}

func (p ConnectionPart) AsTransportation() (*Transportation, bool) {
	return p.Transportation, p.Type == PartTypeTransportation && p.Transportation != nil
}

func (p ConnectionPart) AsFootway() (*Footway, bool) {
	return p.Footway, p.Type == PartTypeFootway && p.Footway != nil
}

func (p ConnectionPart) From() Location {
	if transportation, ok := p.AsTransportation(); ok {
		return transportation.From
	}
	if footway, ok := p.AsFootway(); ok {
		return footway.From
	}
	return Location{}
}

func (p ConnectionPart) To() Location {
	if transportation, ok := p.AsTransportation(); ok {
		return transportation.To
	}
	if footway, ok := p.AsFootway(); ok {
		return footway.To
	}
	return Location{}
}

func (p ConnectionPart) Cancelled() bool {
	if transportation, ok := p.AsTransportation(); ok {
		return transportation.Cancelled
	}
	if footway, ok := p.AsFootway(); ok {
		return footway.Cancelled
	}
	return false
}

func (p ConnectionPart) DepartureTime() time.Time {
	return MillisToTime(p.departure())
}

func (p ConnectionPart) ArrivalTime() time.Time {
	return MillisToTime(p.arrival())
}

func (p ConnectionPart) departure() int64 {
	if transportation, ok := p.AsTransportation(); ok {
		return transportation.Departure
	}
	if footway, ok := p.AsFootway(); ok {
		return footway.Departure
	}
	return 0
}

func (p ConnectionPart) arrival() int64 {
	if transportation, ok := p.AsTransportation(); ok {
		return transportation.Arrival
	}
	if footway, ok := p.AsFootway(); ok {
		return footway.Arrival
	}
	return 0
}

func (p *ConnectionPart) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type *string `json:"connectionPartType"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Type == nil {
		return &MissingFieldError{Type: "ConnectionPart", Field: "connectionPartType"}
	}

	switch PartType(*tag.Type) {
	case PartTypeTransportation:
		var transportation Transportation
		if err := json.Unmarshal(data, &transportation); err != nil {
			return err
		}
		*p = NewTransportationPart(transportation)
	case PartTypeFootway:
		var footway Footway
		if err := json.Unmarshal(data, &footway); err != nil {
			return err
		}
		*p = NewFootwayPart(footway)
	default:
		return &UnknownVariantError{Union: "ConnectionPart", Discriminator: "connectionPartType", Value: *tag.Type}
	}

	return nil
}

func (p ConnectionPart) MarshalJSON() ([]byte, error) {
	switch p.Type {
	case PartTypeTransportation:
		if p.Transportation != nil {
			return marshalTagged("connectionPartType", string(p.Type), p.Transportation)
		}
	case PartTypeFootway:
		if p.Footway != nil {
			return marshalTagged("connectionPartType", string(p.Type), p.Footway)
		}
	default:
		return nil, &UnknownVariantError{Union: "ConnectionPart", Discriminator: "connectionPartType", Value: string(p.Type)}
	}

	return nil, errors.New("connection part has no payload for type " + string(p.Type))
}

func (t *Transportation) UnmarshalJSON(data []byte) error {
	if err := requireFields("Transportation", data, transportationFields); err != nil {
		return err
	}

	type transportation Transportation
	return json.Unmarshal(data, (*transportation)(t))
}

func (f *Footway) UnmarshalJSON(data []byte) error {
	if err := requireFields("Footway", data, footwayFields); err != nil {
		return err
	}

	type footway Footway
	return json.Unmarshal(data, (*footway)(f))
}

func (s *Stop) UnmarshalJSON(data []byte) error {
	if err := requireFields("Stop", data, stopFields); err != nil {
		return err
	}

	type stop Stop
	return json.Unmarshal(data, (*stop)(s))
}

func (d *PathDescriptor) UnmarshalJSON(data []byte) error {
	if err := requireFields("PathDescriptor", data, pathDescriptorFields); err != nil {
		return err
	}

	type pathDescriptor PathDescriptor
	return json.Unmarshal(data, (*pathDescriptor)(d))
}
