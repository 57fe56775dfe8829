package fahrinfo

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

// MissingFieldError is returned when a required wire field is absent, or null
// where null is not allowed.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

// UnknownVariantError is returned when a discriminator holds a value outside
// the closed set of variants.
type UnknownVariantError struct {
	Union         string
	Discriminator string
	Value         string
}

func (e *UnknownVariantError) Error() string {
	if e.Discriminator == "" {
		return fmt.Sprintf("%s: unknown value %q", e.Union, e.Value)
	}
	return fmt.Sprintf("%s: unknown %s %q", e.Union, e.Discriminator, e.Value)
}

// OrderError reports a connection part that departs before the previous part arrived.
type OrderError struct {
	Index           int
	Departure       int64
	PreviousArrival int64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("connection part %d departs at %d before previous arrival %d", e.Index, e.Departure, e.PreviousArrival)
}

// requireFields checks that every field is present and not null. Fields named
// in nullable only have to be present.
func requireFields(typeName string, data []byte, fields []string, nullable ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, field := range fields {
		value, ok := raw[field]
		if !ok || (string(value) == "null" && !slices.Contains(nullable, field)) {
			return &MissingFieldError{Type: typeName, Field: field}
		}
	}

	return nil
}
