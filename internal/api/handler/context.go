package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/api/middleware"
	"github.com/shopverse/storefront/internal/core/ports"
)

var errNoSession = errors.New("session middleware not installed")

// ctxSession returns the session opened by the Session middleware.
func ctxSession(c echo.Context) (ports.Session, error) {
	s, ok := c.Get(middleware.ContextKeySession).(ports.Session)
	if !ok || s == nil {
		return nil, errNoSession
	}
	return s, nil
}

// ctxClaims extracts the auth claims injected by the Auth middleware. The
// subject must be present; its absence means the route was mounted without
// the middleware or the token was structurally unusable.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.ContextKeyRole).(string)
	return userID, role, nil
}
