// Package biztime converts between wall-clock times and the integer epochs stored in
// the database, and formats instants in the office timezone for notifications.
// Storage is always UTC; the office timezone only affects presentation.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu          sync.RWMutex
	bizLocation = time.UTC
)

// Init sets the office timezone. Empty means UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToMillis returns t as milliseconds since the Unix epoch.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis is the inverse of ToMillis, in UTC.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Format renders t in the office timezone, e.g. "2026-03-02 14:00 CET".
func Format(t time.Time) string {
	return t.In(Location()).Format("2006-01-02 15:04 MST")
}
