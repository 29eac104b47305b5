package middleware

import (
	"context"
	"net/http"
	"time"

	"estatehub/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
)

// SessionStarter resolves the cookie value to a live session id,
// creating a fresh session when id is uuid.Nil or has expired.
type SessionStarter interface {
	Ensure(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
}

type SessionMiddleware struct {
	sessions   SessionStarter
	log        *logrus.Logger
	cookieName string
	secure     bool
	ttl        time.Duration
}

func NewSessionMiddleware(sessions SessionStarter, log *logrus.Logger, cookieName string, secure bool, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		log:        log,
		cookieName: cookieName,
		secure:     secure,
		ttl:        ttl,
	}
}

func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A malformed cookie counts as no session
		current := uuid.Nil
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				current = id
			}
		}

		sessionID, created, err := m.sessions.Ensure(r.Context(), current)
		if err != nil {
			m.log.Errorf("Failed to start session: %+v", err)
			response.InternalServerError(w, "Failed to start session")
			return
		}

		// Sliding expiry: the cookie lives as long as the stored session
		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    sessionID.String(),
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
		if created {
			m.log.Debugf("Started session %s", sessionID)
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
	})
}

// ExpireSessionCookie replaces the cookie set by Handle with one the client drops
func ExpireSessionCookie(w http.ResponseWriter, cookieName string, secure bool) {
	w.Header().Del("Set-Cookie")
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithSessionID stores the session id in ctx
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetSessionIDFromContext extracts session ID from context
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	return sessionID, ok && sessionID != uuid.Nil
}
