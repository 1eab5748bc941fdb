package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/logger"
)

const (
	CookieName = "roster_session"
	contextKey = "roster_session"
	newKey     = "roster_session_new"
)

// Middleware resolves the caller's session from the header (or the cookie),
// starting a new one when it is missing or unknown. The id is echoed back in
// both the header and the cookie. IsNew reports whether this request started it.
func (m *Manager) Middleware(header string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(header)
			if id == "" {
				if cookie, err := c.Cookie(CookieName); err == nil {
					id = cookie.Value
				}
			}

			s, ok := m.Get(id)
			if !ok {
				s = m.Create(req.Context())
			}
			c.Set(newKey, !ok)

			c.Response().Header().Set(header, s.ID)
			c.SetCookie(&http.Cookie{
				Name:     CookieName,
				Value:    s.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := logger.WithLogger(req.Context(), map[string]interface{}{
				"session_id": s.ID,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})
			c.SetRequest(req.WithContext(ctx))
			c.Set(contextKey, s)
			return next(c)
		}
	}
}

// FromContext returns the session the middleware attached, or nil.
func FromContext(c echo.Context) *Session {
	s, _ := c.Get(contextKey).(*Session)
	return s
}

// IsNew reports whether the middleware created the session for this request.
func IsNew(c echo.Context) bool {
	created, _ := c.Get(newKey).(bool)
	return created
}
