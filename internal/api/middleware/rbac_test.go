package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

func TestRequireElevated_Allows(t *testing.T) {
	c, rec := newContext("")
	c.Set(sessionContextKey, &domain.Session{Role: domain.RoleElevated})

	called := false
	handler := RequireElevated()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireElevated_ForbidsStandard(t *testing.T) {
	c, _ := newContext("")
	c.Set(sessionContextKey, &domain.Session{Role: domain.RoleStandard})

	handler := RequireElevated()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireElevated_WithoutSessionIsUnauthenticated(t *testing.T) {
	c, _ := newContext("")

	handler := RequireElevated()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
