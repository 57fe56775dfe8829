package fahrinfo

import (
	"encoding/json"
	"math"
	"time"
)

type DepartureInfo struct {
	ServingLines []ServingLine `json:"servingLines"`
	Departures   []Departure   `json:"departures"`
}

var departureInfoFields = []string{"servingLines", "departures"}

type Departure struct {
	DepartureTime       int64   `json:"departureTime"`
	Product             Product `json:"product"`
	Label               string  `json:"label"`
	Destination         string  `json:"destination"`
	Live                bool    `json:"live"`
	Cancelled           bool    `json:"cancelled"`
	LineBackgroundColor string  `json:"lineBackgroundColor"`
	DepartureID         string  `json:"departureId"`
	Sev                 bool    `json:"sev"`
	Platform            string  `json:"platform"`
	StopPositionNumber  uint8   `json:"stopPositionNumber"`
}

var departureFields = []string{
	"departureTime", "product", "label", "destination", "live", "cancelled",
	"lineBackgroundColor", "departureId", "sev", "platform", "stopPositionNumber",
}

type ServingLine struct {
	Destination string  `json:"destination"`
	Sev         bool    `json:"sev"`
	PartialNet  string  `json:"partialNet"`
	Product     Product `json:"product"`
	LineNumber  string  `json:"lineNumber"`
	DivaID      string  `json:"divaId"`
}

var servingLineFields = []string{"destination", "sev", "partialNet", "product", "lineNumber", "divaId"}

func (d Departure) Time() time.Time {
	return MillisToTime(d.DepartureTime)
}

// MinutesUntil rounds up, so a departure 30 seconds away reads as 1.
func (d Departure) MinutesUntil(now time.Time) int {
	return int(math.Ceil(d.Time().Sub(now).Minutes()))
}

func (d *DepartureInfo) UnmarshalJSON(data []byte) error {
	if err := requireFields("DepartureInfo", data, departureInfoFields); err != nil {
		return err
	}

	type departureInfo DepartureInfo
	return json.Unmarshal(data, (*departureInfo)(d))
}

func (d *Departure) UnmarshalJSON(data []byte) error {
	if err := requireFields("Departure", data, departureFields); err != nil {
		return err
	}

	type departure Departure
	return json.Unmarshal(data, (*departure)(d))
}

func (s *ServingLine) UnmarshalJSON(data []byte) error {
	if err := requireFields("ServingLine", data, servingLineFields); err != nil {
		return err
	}

	type servingLine ServingLine
	return json.Unmarshal(data, (*servingLine)(s))
}
