package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/pkg/metrics"
)

const sessionContextKey = "session"

// SessionResolver looks up the live session behind a token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// RequireAuthenticated rejects the request with domain.ErrUnauthenticated
// unless the session cookie resolves to a live session, which is then stored
// on the context for later guards and handlers.
func RequireAuthenticated(resolver SessionResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c, cookieName)
			if token == "" {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}

			session, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionMissing) {
					metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
					return domain.ErrUnauthenticated
				}
				return err
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionToken returns the raw session token from the request cookie, or "".
func SessionToken(c echo.Context, cookieName string) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionFrom returns the session stored by RequireAuthenticated.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(sessionContextKey).(*domain.Session)
	return session, ok && session != nil
}
