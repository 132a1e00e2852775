package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/ports"
)

// HeaderSessionID carries the shopper session on requests and responses.
const HeaderSessionID = "X-Session-ID"

// ContextKeySession holds the ports.Session of the request.
const ContextKeySession = "session"

// Session resolves the X-Session-ID header to a live session, opening a new
// one when the header is missing or unknown, and echoes the effective id on
// the response.
func Session(manager ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := manager.Open(c.Request().Context(), c.Request().Header.Get(HeaderSessionID))
			if err != nil {
				return err
			}
			c.Set(ContextKeySession, s)
			c.Response().Header().Set(HeaderSessionID, s.ID())
			return next(c)
		}
	}
}
