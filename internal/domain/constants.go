package domain

// Slot search configuration
const (
	SlotDurationMinutes      = 15
	UpcomingSlotsLimit       = 4
	DaySlotsLimit            = 4
	MaxLookaheadDays         = 7
	AvailabilityProbeMinutes = 1 // padding around a single-slot busy query
)
