package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	lockCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// SessionLockService serializes read-modify-write cycles on a single session.
// Requests from different sessions never block each other.
// Call Stop() during graceful shutdown.
type SessionLockService struct {
	log *logrus.Logger

	// Per-session mutex
	sessionMu sync.Map // map[uuid.UUID]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSessionLockService starts the background cleanup goroutine
func NewSessionLockService(log *logrus.Logger) *SessionLockService {
	return newSessionLockService(log, lockCleanupInterval)
}

func newSessionLockService(log *logrus.Logger, cleanupEvery time.Duration) *SessionLockService {
	svc := &SessionLockService{
		log:      log,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop(cleanupEvery)

	return svc
}

// Lock acquires the session's mutex and returns the matching unlock func
func (s *SessionLockService) Lock(sessionID uuid.UUID) func() {
	mt := s.getSessionMutex(sessionID)
	mt.mu.Lock()
	return func() {
		mt.lastUsed.Store(time.Now().Unix())
		mt.mu.Unlock()
	}
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SessionLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SessionLockService stopped")
	}
}

func (s *SessionLockService) getSessionMutex(sessionID uuid.UUID) *mutexWithTimestamp {
	mt, _ := s.sessionMu.LoadOrStore(sessionID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

func (s *SessionLockService) cleanupLoop(every time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Session lock cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes(time.Now().Add(-lockStaleThreshold))
		}
	}
}

// cleanupStaleMutexes removes mutexes unused since cutoff.
// lastUsed is checked while holding the lock so a concurrent Lock is never lost.
func (s *SessionLockService) cleanupStaleMutexes(cutoff time.Time) int {
	cutoffUnix := cutoff.Unix()
	var cleaned int

	s.sessionMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffUnix {
				s.sessionMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale session locks", cleaned)
	}
	return cleaned
}
