package usecase

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

type DraftUsecase interface {
	GetDraft(ctx context.Context) (*dto.DraftResponse, error)
	UpdateDetails(ctx context.Context, req *dto.UpdateDraftRequest) (*dto.DraftResponse, error)
	SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.DraftResponse, error)
	SelectDay(ctx context.Context, req *dto.SelectDayRequest) (*dto.DraftResponse, error)
	SelectTime(ctx context.Context, req *dto.SelectTimeRequest) (*dto.DraftResponse, error)
}

type draftUsecase struct {
	log      *logrus.Logger
	sessions *SessionAccessor
	slotRepo repository.SlotRepository
	now      Clock
}

func NewDraftUsecase(log *logrus.Logger, sessions *SessionAccessor, slotRepo repository.SlotRepository, now Clock) DraftUsecase {
	return &draftUsecase{
		log:      log,
		sessions: sessions,
		slotRepo: slotRepo,
		now:      now,
	}
}

// Midnight truncates t to the start of its day in t's location
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSelectableDate reports whether date is today or later. Time of day is ignored.
func IsSelectableDate(date, now time.Time) bool {
	return !Midnight(date.In(now.Location())).Before(Midnight(now))
}

// IsSelectableSlot reports whether label names an available slot
func IsSelectableSlot(slots repository.SlotRepository, label string) bool {
	slot, ok := slots.FindByTime(label)
	return ok && slot.Available
}

func (u *draftUsecase) GetDraft(ctx context.Context) (*dto.DraftResponse, error) {
	session, err := u.sessions.View(ctx)
	if err != nil {
		return nil, err
	}
	return converter.DraftToResponse(&session.Draft), nil
}

// UpdateDetails binds the text fields of the form. An unknown meeting type
// leaves the current one in place.
func (u *draftUsecase) UpdateDetails(ctx context.Context, req *dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		s.Draft.Name = req.Name
		s.Draft.Email = req.Email
		s.Draft.Phone = req.Phone
		s.Draft.Notes = req.Notes
		if mt := entity.MeetingType(req.MeetingType); mt.IsValid() {
			s.Draft.MeetingType = mt
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update draft: %+v", err)
		return nil, err
	}
	return converter.DraftToResponse(&session.Draft), nil
}

// SelectDate sets the draft date. Dates before today are ignored.
func (u *draftUsecase) SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.DraftResponse, error) {
	now := u.now()
	date, err := time.ParseInLocation(converter.DateFormat, req.Date, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	return u.selectDate(ctx, func(*entity.Session) (time.Time, bool) { return date, true })
}

// SelectDay sets the draft date to a day of the month the calendar shows.
// Days outside the month and days before today are ignored.
func (u *draftUsecase) SelectDay(ctx context.Context, req *dto.SelectDayRequest) (*dto.DraftResponse, error) {
	loc := u.now().Location()
	return u.selectDate(ctx, func(s *entity.Session) (time.Time, bool) {
		if req.Day < 1 || req.Day > s.ViewMonth.Days() {
			return time.Time{}, false
		}
		return s.ViewMonth.Date(req.Day, loc), true
	})
}

func (u *draftUsecase) selectDate(ctx context.Context, pick func(*entity.Session) (time.Time, bool)) (*dto.DraftResponse, error) {
	now := u.now()
	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		date, ok := pick(s)
		if !ok || !IsSelectableDate(date, now) {
			return nil
		}
		date = Midnight(date)
		s.Draft.Date = &date
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to select date: %+v", err)
		return nil, err
	}
	return converter.DraftToResponse(&session.Draft), nil
}

// SelectTime sets the draft time. Unknown or unavailable slots are ignored.
func (u *draftUsecase) SelectTime(ctx context.Context, req *dto.SelectTimeRequest) (*dto.DraftResponse, error) {
	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		if IsSelectableSlot(u.slotRepo, req.Time) {
			s.Draft.Time = req.Time
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to select time: %+v", err)
		return nil, err
	}
	return converter.DraftToResponse(&session.Draft), nil
}
