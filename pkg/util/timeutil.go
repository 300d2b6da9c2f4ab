package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Clock returns now when it is set and NowUTC otherwise.
func Clock(now func() time.Time) func() time.Time {
	if now == nil {
		return NowUTC
	}
	return now
}
