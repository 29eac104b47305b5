package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const memorySweepInterval = time.Minute

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.Session
	ttl      time.Duration
	now      func() time.Time
	log      *logrus.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewMemorySessionRepository keeps sessions in process memory. Sessions expire
// ttl after their last save and are swept in the background until Close.
func NewMemorySessionRepository(ttl time.Duration, log *logrus.Logger) domainRepo.SessionRepository {
	return newMemorySessionRepository(ttl, time.Now, log, memorySweepInterval)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time, log *logrus.Logger, sweepEvery time.Duration) *memorySessionRepository {
	r := &memorySessionRepository{
		sessions: make(map[uuid.UUID]*entity.Session),
		ttl:      ttl,
		now:      now,
		log:      log,
		stopChan: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.sweepLoop(sweepEvery)

	return r
}

func (r *memorySessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(session.ExpiresAt) {
		return nil, nil
	}
	return session.Clone(), nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	stored := session.Clone()
	stored.ExpiresAt = r.now().Add(r.ttl)
	session.ExpiresAt = stored.ExpiresAt

	r.mu.Lock()
	r.sessions[session.ID] = stored
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

// Close stops the sweeper. Safe to call multiple times.
func (r *memorySessionRepository) Close() error {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()
	}
	return nil
}

func (r *memorySessionRepository) sweepLoop(every time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *memorySessionRepository) sweep() int {
	now := r.now()
	var expired int

	r.mu.Lock()
	for id, session := range r.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(r.sessions, id)
			expired++
		}
	}
	r.mu.Unlock()

	if expired > 0 {
		r.log.Debugf("Swept %d expired sessions", expired)
	}
	return expired
}
