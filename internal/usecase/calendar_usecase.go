package usecase

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/calendar"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDirection = errors.New("direction must be prev or next")
)

const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

type CalendarUsecase interface {
	// GetMonth renders month, or the session's current month when month is nil
	GetMonth(ctx context.Context, month *calendar.Month) (*dto.CalendarResponse, error)
	Navigate(ctx context.Context, req *dto.NavigateMonthRequest) (*dto.CalendarResponse, error)
	GetSlots(ctx context.Context) (*dto.SlotListResponse, error)
}

type calendarUsecase struct {
	log      *logrus.Logger
	sessions *SessionAccessor
	slotRepo repository.SlotRepository
	now      Clock
}

func NewCalendarUsecase(log *logrus.Logger, sessions *SessionAccessor, slotRepo repository.SlotRepository, now Clock) CalendarUsecase {
	return &calendarUsecase{
		log:      log,
		sessions: sessions,
		slotRepo: slotRepo,
		now:      now,
	}
}

func (u *calendarUsecase) GetMonth(ctx context.Context, month *calendar.Month) (*dto.CalendarResponse, error) {
	session, err := u.sessions.View(ctx)
	if err != nil {
		return nil, err
	}

	m := session.ViewMonth
	if month != nil {
		m = calendar.NewMonth(month.Year, month.Month)
	}

	resp := BuildCalendar(m, u.now(), session.Draft.Date)
	return &resp, nil
}

// Navigate moves the session's calendar one month back or forward
func (u *calendarUsecase) Navigate(ctx context.Context, req *dto.NavigateMonthRequest) (*dto.CalendarResponse, error) {
	if req.Dir != DirectionPrev && req.Dir != DirectionNext {
		return nil, ErrInvalidDirection
	}

	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		if req.Dir == DirectionPrev {
			s.ViewMonth = s.ViewMonth.Prev()
		} else {
			s.ViewMonth = s.ViewMonth.Next()
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to navigate calendar: %+v", err)
		return nil, err
	}

	resp := BuildCalendar(session.ViewMonth, u.now(), session.Draft.Date)
	return &resp, nil
}

func (u *calendarUsecase) GetSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	session, err := u.sessions.View(ctx)
	if err != nil {
		return nil, err
	}

	resp := BuildSlots(u.slotRepo.FindAll(), session.Draft.Time)
	return &resp, nil
}

// BuildCalendar lays out month as a Sunday-first grid. Days before today are
// not selectable; selected marks the draft date when it falls in month.
func BuildCalendar(month calendar.Month, now time.Time, selected *time.Time) dto.CalendarResponse {
	loc := now.Location()
	today := Midnight(now)

	grid := month.Grid()
	cells := make([]dto.CalendarCell, len(grid))
	for i, c := range grid {
		if c.Blank() {
			cells[i] = dto.CalendarCell{Blank: true}
			continue
		}

		date := month.Date(c.Day, loc)
		cells[i] = dto.CalendarCell{
			Day:        c.Day,
			Date:       date.Format(converter.DateFormat),
			Selectable: IsSelectableDate(date, now),
			Today:      date.Equal(today),
			Selected:   selected != nil && Midnight(selected.In(loc)).Equal(date),
		}
	}

	prev, next := month.Prev(), month.Next()
	return dto.CalendarResponse{
		Year:         month.Year,
		Month:        month.Month,
		MonthName:    month.Name(),
		Title:        month.String(),
		DaysInMonth:  month.Days(),
		FirstWeekday: month.FirstWeekday(),
		Weekdays:     calendar.WeekdayLabels,
		Cells:        cells,
		Weeks:        calendar.Weeks(cells, dto.CalendarCell{Blank: true}),
		Prev:         dto.MonthRef{Year: prev.Year, Month: prev.Month},
		Next:         dto.MonthRef{Year: next.Year, Month: next.Month},
	}
}

// BuildSlots marks which slot the draft currently holds
func BuildSlots(slots []entity.TimeSlot, selected string) dto.SlotListResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, s := range slots {
		responses[i] = dto.SlotResponse{
			Time:      s.Time,
			Available: s.Available,
			Selected:  s.Time == selected,
		}
	}
	return dto.SlotListResponse{Slots: responses}
}
