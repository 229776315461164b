package httpserver

import "github.com/labstack/echo/v4"

const (
	sessionHeader  = "x-session-id"
	defaultSession = "default-session"
)

// SessionID reads the caller's session identifier. Callers without one all
// share the default session.
func SessionID(c echo.Context) string {
	if v := c.Request().Header.Get(sessionHeader); v != "" {
		return v
	}
	return defaultSession
}
