package entity

import (
	"time"

	"estatehub/pkg/calendar"

	"github.com/google/uuid"
)

// Session holds everything a visitor has done on the dashboard.
// It is discarded when it expires; nothing in it outlives the session.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Draft     BookingFormData `json:"draft"`
	Bookings  []Booking       `json:"bookings"`
	ViewMonth calendar.Month  `json:"view_month"`
	Notice    string          `json:"notice,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// NewSession creates an empty session viewing the month of now
func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Draft:     NewBookingFormData(),
		Bookings:  []Booking{},
		ViewMonth: calendar.Of(now),
		CreatedAt: now,
	}
}

// AddBooking appends a confirmed booking, preserving insertion order
func (s *Session) AddBooking(b Booking) {
	s.Bookings = append(s.Bookings, b)
}

// ResetDraft clears the draft back to its initial state
func (s *Session) ResetDraft() {
	s.Draft = NewBookingFormData()
}

// TakeNotice returns the pending notice and clears it so it is shown once
func (s *Session) TakeNotice() string {
	notice := s.Notice
	s.Notice = ""
	return notice
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	if s.Draft.Date != nil {
		d := *s.Draft.Date
		c.Draft.Date = &d
	}
	c.Bookings = make([]Booking, len(s.Bookings))
	copy(c.Bookings, s.Bookings)
	return &c
}
