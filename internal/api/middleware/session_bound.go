package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/ports"
)

// SessionBound runs after Auth and rejects tokens whose session no longer
// holds the same user, so logging out revokes every token issued on it.
func SessionBound(manager ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(ContextKeySessionID).(string)
			userID, _ := c.Get(ContextKeyUserID).(string)
			role, _ := c.Get(ContextKeyRole).(string)
			if sid == "" || userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token not bound to a session")
			}

			s, err := manager.Open(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if s.ID() != sid {
				return echo.NewHTTPError(http.StatusUnauthorized, "session is signed out")
			}
			u := s.Auth().User()
			if u == nil || u.ID != userID || u.Role != role {
				return echo.NewHTTPError(http.StatusUnauthorized, "session is signed out")
			}
			return next(c)
		}
	}
}
