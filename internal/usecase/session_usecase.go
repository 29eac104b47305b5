package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionRequired = errors.New("session not found in context")
	ErrSessionExpired  = errors.New("session expired or was reset")
)

// Clock returns the current time. Dates are compared in its location.
type Clock func() time.Time

type SessionUsecase interface {
	Ensure(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	Reset(ctx context.Context, id uuid.UUID) error
}

// SessionAccessor loads and saves the session of the current request.
// Every update runs under the session's lock.
type SessionAccessor struct {
	repo  repository.SessionRepository
	locks *service.SessionLockService
	now   Clock
}

func NewSessionAccessor(repo repository.SessionRepository, locks *service.SessionLockService, now Clock) *SessionAccessor {
	return &SessionAccessor{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// View returns a copy of the current session without saving it
func (a *SessionAccessor) View(ctx context.Context) (*entity.Session, error) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	session, err := a.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = entity.NewSession(sessionID, a.now())
	}
	return session, nil
}

// Update applies fn to the current session and saves it. When fn returns an
// error nothing is saved. A session that ended after the request started is
// never recreated; Update returns ErrSessionExpired instead.
func (a *SessionAccessor) Update(ctx context.Context, fn func(*entity.Session) error) (*entity.Session, error) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	unlock := a.locks.Lock(sessionID)
	defer unlock()

	session, err := a.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionExpired
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := a.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

type sessionUsecase struct {
	log   *logrus.Logger
	repo  repository.SessionRepository
	locks *service.SessionLockService
	now   Clock
}

func NewSessionUsecase(log *logrus.Logger, repo repository.SessionRepository, locks *service.SessionLockService, now Clock) SessionUsecase {
	return &sessionUsecase{
		log:   log,
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Ensure returns id when it names a live session, otherwise it creates a new
// empty session and returns its id. The returned bool reports creation.
func (u *sessionUsecase) Ensure(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	if id != uuid.Nil {
		session, err := u.repo.Get(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to load session %s: %+v", id, err)
			return uuid.Nil, false, err
		}
		if session != nil {
			return id, false, nil
		}
	}

	session := entity.NewSession(uuid.New(), u.now())
	if err := u.repo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return uuid.Nil, false, err
	}
	return session.ID, true, nil
}

// Reset discards a session and everything booked in it.
// Its mutex stays until the lock cleanup removes it.
func (u *sessionUsecase) Reset(ctx context.Context, id uuid.UUID) error {
	unlock := u.locks.Lock(id)
	defer unlock()

	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete session %s: %+v", id, err)
		return err
	}
	u.log.Infof("Session reset: id=%s", id)
	return nil
}
