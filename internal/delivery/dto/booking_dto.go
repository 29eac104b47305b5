package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Date             string    `json:"date"`       // Format: YYYY-MM-DD
	DateLabel        string    `json:"date_label"` // e.g. "Thu, Dec 5"
	Time             string    `json:"time"`
	MeetingType      string    `json:"meeting_type"`
	MeetingTypeLabel string    `json:"meeting_type_label"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
