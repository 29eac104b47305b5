package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BookingConfirmedNotice is shown once after a successful submission
const BookingConfirmedNotice = "Booking confirmed successfully!"

// ValidationError is returned by Submit when required draft fields are missing.
// Fields maps each missing field to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "please fill in all required fields: " + strings.Join(fields, ", ")
}

// IsValidationError checks if err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

type BookingUsecase interface {
	Submit(ctx context.Context) (*dto.BookingResponse, error)
	GetBookings(ctx context.Context) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	log       *logrus.Logger
	sessions  *SessionAccessor
	validator *validator.CustomValidator
	newID     func() uuid.UUID
	now       Clock
}

func NewBookingUsecase(log *logrus.Logger, sessions *SessionAccessor, validator *validator.CustomValidator, now Clock) BookingUsecase {
	return &bookingUsecase{
		log:       log,
		sessions:  sessions,
		validator: validator,
		newID:     uuid.New,
		now:       now,
	}
}

// Submit turns the session draft into a booking.
//
// Flow:
// 1. Validate name, email, date and time are present
// 2. Assign an id not used by any earlier booking of the session
// 3. Append the booking, reset the draft and raise the confirmation notice
//
// On a validation failure the draft and the bookings are left untouched.
// Double-booking a date and time is allowed.
func (u *bookingUsecase) Submit(ctx context.Context) (*dto.BookingResponse, error) {
	var booking entity.Booking

	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		if err := u.validator.Validate(&s.Draft); err != nil {
			return &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
		}

		booking = s.Draft.ToBooking(u.uniqueID(s.Bookings), u.now())
		s.AddBooking(booking)
		s.ResetDraft()
		s.Notice = BookingConfirmedNotice
		return nil
	})
	if err != nil {
		if !IsValidationError(err) {
			u.log.Warnf("Failed to submit booking: %+v", err)
		}
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, session=%s, date=%s, time=%s, type=%s",
		booking.ID, session.ID, booking.Date.Format(converter.DateFormat), booking.Time, booking.MeetingType)
	return converter.BookingToResponse(&booking), nil
}

// GetBookings returns the session's bookings in the order they were made
func (u *bookingUsecase) GetBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	session, err := u.sessions.View(ctx)
	if err != nil {
		return nil, err
	}
	return converter.BookingsToListResponse(session.Bookings), nil
}

func (u *bookingUsecase) uniqueID(existing []entity.Booking) uuid.UUID {
	for {
		id := u.newID()
		taken := false
		for _, b := range existing {
			if b.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
