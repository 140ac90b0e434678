// Package localtime provides the café's civil time. All timestamps in the
// system are taken in India time (Asia/Kolkata).
package localtime

import (
	"time"
)

var india = mustLoad("Asia/Kolkata")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("localtime: " + err.Error())
	}
	return loc
}

// Location returns the café's time zone.
func Location() *time.Location {
	return india
}

// Now returns the current time in the café's time zone.
func Now() time.Time {
	return time.Now().In(india)
}

// StartOfDay returns local civil midnight of t's date in the café's time zone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(india)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, india)
}
