package handler

import (
	"errors"
	"net/http"

	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	cookieName     string
	cookieSecure   bool
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, cookieName string, cookieSecure bool) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		cookieName:     cookieName,
		cookieSecure:   cookieSecure,
	}
}

// EndSession discards the draft and every booking of the current session
// and tells the client to drop the session cookie.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.BadRequest(w, "No active session")
		return
	}

	if err := h.sessionUsecase.Reset(r.Context(), sessionID); err != nil {
		response.InternalServerError(w, "Failed to end session")
		return
	}

	middleware.ExpireSessionCookie(w, h.cookieName, h.cookieSecure)
	response.Success(w, http.StatusOK, "Session ended", nil)
}

// sessionEnded answers a request whose session was reset or expired
// while it was in flight. It reports whether it wrote the response.
func sessionEnded(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, usecase.ErrSessionExpired) {
		return false
	}
	response.Error(w, http.StatusConflict, "Session expired, please retry", nil)
	return true
}
