package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/service/serviceutils"
	"github.com/locvowork/employee_roster/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
	header   string
}

func NewSessionHandler(sessions *session.Manager, header string) *SessionHandler {
	return &SessionHandler{sessions: sessions, header: header}
}

// CurrentHandler reports the id of the session the request resolved to.
func (h *SessionHandler) CurrentHandler(c echo.Context) error {
	s := session.FromContext(c)
	if s == nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", nil)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Session active", sessionResponse{ID: s.ID})
}

// CreateHandler starts a fresh, empty roster regardless of the caller's
// current session. A session the middleware just created for this request is
// already fresh and is returned as is.
func (h *SessionHandler) CreateHandler(c echo.Context) error {
	s := session.FromContext(c)
	if s == nil || !session.IsNew(c) {
		s = h.sessions.Create(c.Request().Context())
	}
	c.Response().Header().Set(h.header, s.ID)
	c.SetCookie(&http.Cookie{Name: session.CookieName, Value: s.ID, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Session created", sessionResponse{ID: s.ID})
}

// DeleteHandler discards the caller's session and everything in its roster.
func (h *SessionHandler) DeleteHandler(c echo.Context) error {
	s := session.FromContext(c)
	if s == nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", nil)
	}
	h.sessions.Delete(s.ID)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Session ended", sessionResponse{ID: s.ID})
}
