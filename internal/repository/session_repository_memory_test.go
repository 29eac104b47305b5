package repository

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestMemorySessionRepositorySaveAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.December, 5, 9, 0, 0, 0, time.UTC)}
	repo := newMemorySessionRepository(time.Hour, clock.Now, quietLogger(), time.Hour)
	defer repo.Close()

	ctx := context.Background()
	got, err := repo.Get(ctx, uuid.New())
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	session := entity.NewSession(uuid.New(), clock.Now())
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := clock.Now().Add(time.Hour); !session.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", session.ExpiresAt, want)
	}

	got, err = repo.Get(ctx, session.ID)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}

	// mutating the returned copy must not leak into the store
	got.AddBooking(entity.Booking{ID: uuid.New()})
	again, _ := repo.Get(ctx, session.ID)
	if len(again.Bookings) != 0 {
		t.Errorf("stored session was mutated through a returned copy")
	}
}

func TestMemorySessionRepositoryExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.December, 5, 9, 0, 0, 0, time.UTC)}
	repo := newMemorySessionRepository(30*time.Minute, clock.Now, quietLogger(), time.Hour)
	defer repo.Close()

	ctx := context.Background()
	s1 := entity.NewSession(uuid.New(), clock.Now())
	s2 := entity.NewSession(uuid.New(), clock.Now())
	_ = repo.Save(ctx, s1)
	_ = repo.Save(ctx, s2)

	clock.Advance(20 * time.Minute)
	alive, _ := repo.Get(ctx, s2.ID)
	_ = repo.Save(ctx, alive)

	clock.Advance(15 * time.Minute)
	if got, _ := repo.Get(ctx, s1.ID); got != nil {
		t.Error("s1 should have expired")
	}
	if got, _ := repo.Get(ctx, s2.ID); got == nil {
		t.Error("s2 was saved again and should still be alive")
	}

	if swept := repo.sweep(); swept != 1 {
		t.Errorf("sweep() = %d, want 1", swept)
	}
}

func TestMemorySessionRepositoryDelete(t *testing.T) {
	repo := newMemorySessionRepository(time.Hour, time.Now, quietLogger(), time.Hour)
	defer repo.Close()

	ctx := context.Background()
	session := entity.NewSession(uuid.New(), time.Now())
	_ = repo.Save(ctx, session)
	_ = repo.Delete(ctx, session.ID)
	if got, _ := repo.Get(ctx, session.ID); got != nil {
		t.Error("deleted session still returned")
	}

	if err := repo.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
