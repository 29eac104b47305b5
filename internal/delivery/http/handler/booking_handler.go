package handler

import (
	"errors"
	"net/http"

	"estatehub/internal/usecase"
	"estatehub/pkg/response"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
	}
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// Submit books the session's current draft
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingUsecase.Submit(r.Context())
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(w, vErr.Fields)
			return
		}
		if sessionEnded(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking confirmed successfully", booking)
}
