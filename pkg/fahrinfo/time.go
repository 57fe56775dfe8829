package fahrinfo

import "time"

// MillisToTime converts an upstream epoch-milliseconds timestamp into local time.
func MillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
