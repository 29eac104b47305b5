package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/repository"
	"estatehub/internal/service"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 2024-12-10 14:30 local: a Tuesday in the middle of December
var testNow = time.Date(2024, time.December, 10, 14, 30, 0, 0, time.Local)

type fixture struct {
	sessions  SessionUsecase
	drafts    DraftUsecase
	calendar  CalendarUsecase
	bookings  BookingUsecase
	dashboard DashboardUsecase
	ctx       context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	clock := func() time.Time { return testNow }
	repo := repository.NewMemorySessionRepository(time.Hour, log)
	locks := service.NewSessionLockService(log)
	t.Cleanup(func() {
		repo.Close()
		locks.Stop()
	})

	slots := repository.NewSlotRepository()
	accessor := NewSessionAccessor(repo, locks, clock)

	f := &fixture{
		sessions:  NewSessionUsecase(log, repo, locks, clock),
		drafts:    NewDraftUsecase(log, accessor, slots, clock),
		calendar:  NewCalendarUsecase(log, accessor, slots, clock),
		bookings:  NewBookingUsecase(log, accessor, validator.NewValidator(), clock),
		dashboard: NewDashboardUsecase(log, accessor, slots, clock),
	}

	id, created, err := f.sessions.Ensure(context.Background(), uuid.Nil)
	if err != nil || !created {
		t.Fatalf("Ensure = %s, %v, %v", id, created, err)
	}
	f.ctx = middleware.WithSessionID(context.Background(), id)
	return f
}
