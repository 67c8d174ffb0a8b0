package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/moodmenu/recipe-api/internal/api/middleware"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie, logger: logger}
}

// Login verifies credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.Session.ExpiresAt,
		MaxAge:   int(res.Session.ExpiresAt.Sub(res.Session.IssuedAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Email:      res.Identity.LoginKey,
		Role:       res.Identity.Role,
		IsElevated: res.Identity.Role.IsElevated(),
		ExpiresAt:  res.Session.ExpiresAt,
	})
}

// Logout ends the current session, if any, and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c, h.cookie.Name); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			h.logger.Warn().Err(err).Msg("logout: session removal failed")
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Status reports whether the request carries a live session. It never fails.
//
// @Summary      Authentication status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	token := middleware.SessionToken(c, h.cookie.Name)
	if token == "" {
		return c.JSON(http.StatusOK, statusResponse{})
	}

	session, err := h.authService.Resolve(c.Request().Context(), token)
	if err != nil {
		h.logger.Debug().Err(err).Msg("auth status: no live session")
		return c.JSON(http.StatusOK, statusResponse{})
	}

	return c.JSON(http.StatusOK, statusResponse{
		Authenticated: true,
		Email:         session.LoginKey,
		Role:          session.Role,
		IsElevated:    session.Role.IsElevated(),
	})
}
