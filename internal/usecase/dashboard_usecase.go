package usecase

import (
	"context"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	// Load assembles the dashboard and consumes the pending notice
	Load(ctx context.Context) (*dto.DashboardView, error)
}

type dashboardUsecase struct {
	log      *logrus.Logger
	sessions *SessionAccessor
	slotRepo repository.SlotRepository
	now      Clock
}

func NewDashboardUsecase(log *logrus.Logger, sessions *SessionAccessor, slotRepo repository.SlotRepository, now Clock) DashboardUsecase {
	return &dashboardUsecase{
		log:      log,
		sessions: sessions,
		slotRepo: slotRepo,
		now:      now,
	}
}

func (u *dashboardUsecase) Load(ctx context.Context) (*dto.DashboardView, error) {
	var notice string
	session, err := u.sessions.Update(ctx, func(s *entity.Session) error {
		notice = s.TakeNotice()
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	return &dto.DashboardView{
		Draft:    *converter.DraftToResponse(&session.Draft),
		Calendar: BuildCalendar(session.ViewMonth, u.now(), session.Draft.Date),
		Slots:    BuildSlots(u.slotRepo.FindAll(), session.Draft.Time),
		Bookings: *converter.BookingsToListResponse(session.Bookings),
		Notice:   notice,
	}, nil
}
