package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingFormData is the in-progress draft of a booking.
// Date is nil until a day has been picked from the calendar.
type BookingFormData struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required"`
	Phone       string      `json:"phone"`
	Date        *time.Time  `json:"date" validate:"required"`
	Time        string      `json:"time" validate:"required"`
	MeetingType MeetingType `json:"meeting_type"`
	Notes       string      `json:"notes"`
}

// NewBookingFormData returns an empty draft defaulting to an online meeting
func NewBookingFormData() BookingFormData {
	return BookingFormData{MeetingType: MeetingTypeOnline}
}

// HasDate checks if a day has been selected
func (f *BookingFormData) HasDate() bool {
	return f.Date != nil
}

// ToBooking builds a booking from the draft. The caller validates the draft first.
func (f *BookingFormData) ToBooking(id uuid.UUID, createdAt time.Time) Booking {
	var date time.Time
	if f.Date != nil {
		date = *f.Date
	}
	meetingType := f.MeetingType
	if !meetingType.IsValid() {
		meetingType = MeetingTypeOnline
	}

	return Booking{
		ID:          id,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Date:        date,
		Time:        f.Time,
		MeetingType: meetingType,
		Notes:       f.Notes,
		CreatedAt:   createdAt,
	}
}
