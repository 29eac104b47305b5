package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

const (
	DateFormat      = "2006-01-02"
	ShortDateFormat = "Mon, Jan 2"
	LongDateFormat  = "Monday, January 2, 2006"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:               booking.ID,
		Name:             booking.Name,
		Email:            booking.Email,
		Phone:            booking.Phone,
		Date:             booking.Date.Format(DateFormat),
		DateLabel:        booking.Date.Format(ShortDateFormat),
		Time:             booking.Time,
		MeetingType:      string(booking.MeetingType),
		MeetingTypeLabel: booking.MeetingType.Label(),
		Notes:            booking.Notes,
		CreatedAt:        booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// BookingsToListResponse wraps bookings with their count
func BookingsToListResponse(bookings []entity.Booking) *dto.BookingListResponse {
	return &dto.BookingListResponse{
		Bookings: BookingsToResponses(bookings),
		Total:    len(bookings),
	}
}
