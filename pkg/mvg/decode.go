package mvg

import (
	"encoding/json"

	"github.com/travigo/mvg/pkg/fahrinfo"
)

// Envelope lists the response bodies Decode understands.
type Envelope interface {
	fahrinfo.Locations | fahrinfo.DepartureInfo | fahrinfo.ConnectionList | fahrinfo.Station
}

// Decode parses a complete response body. Any failure, including an unknown
// discriminator, is reported as ErrDecode with the underlying json or
// fahrinfo error still reachable through errors.As.
func Decode[T Envelope](body []byte) (T, error) {
	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		var zero T
		return zero, &Error{Kind: ErrDecode, Err: err}
	}
	return value, nil
}

func decodeFor[T Envelope](body []byte, subject string) (T, error) {
	value, err := Decode[T](body)
	if err != nil {
		err.(*Error).Subject = subject
	}
	return value, err
}
