// Package timefmt renders stored timestamps the way the user listing
// expects them: local time in a fixed zone, dd-MM-yyyy HH:mm:ss.
package timefmt

import (
	"sync"
	"time"
)

const (
	// Layout is the fixed display pattern for lastLogin/lastLogout.
	Layout = "02-01-2006 15:04:05"

	zoneName = "Asia/Kolkata"
)

var (
	loadOnce sync.Once
	location *time.Location
)

// loc resolves the display zone once. Hosts without a tz database fall
// back to a fixed +05:30 offset, which is equivalent for this zone.
func loc() *time.Location {
	loadOnce.Do(func() {
		var err error
		location, err = time.LoadLocation(zoneName)
		if err != nil {
			location = time.FixedZone("IST", 5*60*60+30*60)
		}
	})
	return location
}

// Format renders t in the display zone, or nil when t is nil so a null
// timestamp stays null in the response.
func Format(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.In(loc()).Format(Layout)
	return &s
}
