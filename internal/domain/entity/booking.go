package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType represents how a booked meeting takes place
type MeetingType string

const (
	MeetingTypeOnline  MeetingType = "online"
	MeetingTypeOffline MeetingType = "offline"
)

// IsValid checks if the meeting type is one of the known values
func (t MeetingType) IsValid() bool {
	return t == MeetingTypeOnline || t == MeetingTypeOffline
}

// Label returns the display name of the meeting type
func (t MeetingType) Label() string {
	if t == MeetingTypeOffline {
		return "In-Person"
	}
	return "Online"
}

// Booking represents a confirmed appointment. Bookings are never mutated once created.
type Booking struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	MeetingType MeetingType `json:"meeting_type"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// IsOnline checks if the meeting happens online
func (b *Booking) IsOnline() bool {
	return b.MeetingType == MeetingTypeOnline
}
