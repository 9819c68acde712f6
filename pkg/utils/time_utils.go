package utils

import (
	"math"
	"time"
)

// India time location (IST, +05:30); expiry dates are shown to users in IST.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsIST converts an epoch value in seconds to IST.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsIST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(istLoc)
}

// DaysUntil reports whole days from now until the epoch t, rounded up.
// Negative when t is in the past.
func DaysUntil(t int64, now time.Time) int {
	remaining := time.Unix(t, 0).Sub(now)
	return int(math.Ceil(remaining.Hours() / 24))
}

func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}
