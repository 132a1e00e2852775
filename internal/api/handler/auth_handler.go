package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
)

// AuthHandler exposes the session's mock authentication.
type AuthHandler struct {
	tokens ports.TokenIssuer
}

func NewAuthHandler(tokens ports.TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Login signs the session in and returns a JWT for account and admin routes.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string        false  "Session id"
// @Param        body          body      loginRequest  true   "Login credentials"
// @Success      200           {object}  authResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := sess.Auth().Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, sess, user)
}

// Register signs the session in as a new customer.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string           false  "Session id"
// @Param        body          body      registerRequest  true   "Account details"
// @Success      201           {object}  authResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := sess.Auth().Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, sess, user)
}

func (h *AuthHandler) respond(c echo.Context, status int, sess ports.Session, user *domain.User) error {
	token, err := h.tokens.Issue(user, sess.ID())
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	return c.JSON(status, authResponse{Token: token, User: user})
}

// Logout signs the session out.
//
// @Summary      Logout
// @Tags         auth
// @Param        X-Session-ID  header  string  false  "Session id"
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess.Auth().Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the user signed in on the session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session id"
// @Success      200           {object}  authResponse
// @Failure      401           {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	user := sess.Auth().User()
	if user == nil {
		return domain.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// UpdateProfile changes the name or email of the signed-in user. It does
// nothing when the session is signed out.
//
// @Summary      Update profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string          false  "Session id"
// @Param        body          body      profileRequest  true   "Fields to change"
// @Success      200           {object}  authResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/account/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	sess.Auth().UpdateProfile(c.Request().Context(), domain.ProfileUpdate{Name: req.Name, Email: req.Email})
	return c.JSON(http.StatusOK, authResponse{User: sess.Auth().User()})
}
