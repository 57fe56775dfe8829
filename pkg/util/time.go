package util

import (
	"time"
)

func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}

// ParseClockOrTimestamp accepts RFC 3339 or a bare "15:04" clock, which is
// placed on the day of now.
func ParseClockOrTimestamp(value string, now time.Time) (time.Time, error) {
	if clock, err := time.Parse("15:04", value); err == nil {
		return AddTimeToDate(now, clock), nil
	}

	return time.Parse(time.RFC3339, value)
}
