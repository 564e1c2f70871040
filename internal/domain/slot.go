package domain

import "time"

// Interval is a [Start, End) pair of instants. It describes working hours, busy periods
// reported by the calendar and candidate slots alike.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share any instant.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// OverlapsAny reports whether the interval overlaps any of the given intervals.
func (i Interval) OverlapsAny(others []Interval) bool {
	for _, other := range others {
		if i.Overlaps(other) {
			return true
		}
	}
	return false
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty returns true if the interval contains no instant
func (i Interval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}
