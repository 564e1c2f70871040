package domain

import (
	"fmt"
	"time"
)

// MeetingStatus represents the state of a meeting in the ledger
type MeetingStatus string

const (
	StatusReserved MeetingStatus = "reserved"
	StatusBooked   MeetingStatus = "booked"
)

// Meeting is a booking request lifted into the fixed timezone.
type Meeting struct {
	Name     string
	Email    string
	Mobile   string
	Notes    *string
	Start    time.Time
	End      time.Time
	Timezone string
}

// Summary is the event title shown in the calendar
func (m *Meeting) Summary() string {
	return fmt.Sprintf("Meeting with %s", m.Name)
}

// Description is the event body shown in the calendar
func (m *Meeting) Description() string {
	notes := "None"
	if m.Notes != nil && *m.Notes != "" {
		notes = *m.Notes
	}
	return fmt.Sprintf("Mobile: %s\nNotes: %s", m.Mobile, notes)
}

// CreatedEvent is what the calendar backend returns after an insert.
type CreatedEvent struct {
	ID   string
	Link string
}

// MeetingRecord is a ledger row guarding a calendar slot against double booking.
type MeetingRecord struct {
	ID         int64
	CalendarID string
	StartAt    time.Time
	EndAt      time.Time
	Name       string
	Email      string
	Mobile     string
	Notes      *string
	Status     MeetingStatus
	EventID    *string
	EventLink  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
