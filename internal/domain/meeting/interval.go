package meeting

import (
	"fmt"
	"time"
)

// Interval is a half-open booking window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("start and end time are required")
	}
	if !end.After(start) {
		return Interval{}, fmt.Errorf("end time must be after start time")
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Overlaps reports whether the two windows intersect. Touching endpoints do not
// overlap, so back-to-back bookings are allowed.
func (i Interval) Overlaps(other Interval) bool {
	return !(!other.End.After(i.Start) || !other.Start.Before(i.End))
}

func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}
