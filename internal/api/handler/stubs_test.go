package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, loginKey, secret string) (*ports.LoginResult, error)
	logoutFn  func(ctx context.Context, token string) error
	resolveFn func(ctx context.Context, token string) (*domain.Session, error)
	createFn  func(ctx context.Context, in ports.CreateIdentityInput) (*domain.Identity, error)
	listFn    func(ctx context.Context) ([]*domain.Identity, error)
}

func (s *stubAuthService) Login(ctx context.Context, loginKey, secret string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, loginKey, secret)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) CreateIdentity(ctx context.Context, in ports.CreateIdentityInput) (*domain.Identity, error) {
	return s.createFn(ctx, in)
}

func (s *stubAuthService) ListIdentities(ctx context.Context) ([]*domain.Identity, error) {
	return s.listFn(ctx)
}

type stubRecipeService struct {
	listAllFn     func(ctx context.Context) ([]*domain.Recipe, error)
	listVisibleFn func(ctx context.Context, mood string) ([]*domain.Recipe, error)
	pickFn        func(ctx context.Context, mood string) (*domain.Recipe, error)
	moodsFn       func(ctx context.Context) ([]domain.Mood, error)
	createFn      func(ctx context.Context, in ports.RecipeInput) (*domain.Recipe, error)
	updateFn      func(ctx context.Context, id string, in ports.RecipeInput) (*domain.Recipe, error)
	toggleFn      func(ctx context.Context, id string) (bool, error)
}

func (s *stubRecipeService) ListAll(ctx context.Context) ([]*domain.Recipe, error) {
	return s.listAllFn(ctx)
}

func (s *stubRecipeService) ListVisible(ctx context.Context, mood string) ([]*domain.Recipe, error) {
	return s.listVisibleFn(ctx, mood)
}

func (s *stubRecipeService) Pick(ctx context.Context, mood string) (*domain.Recipe, error) {
	return s.pickFn(ctx, mood)
}

func (s *stubRecipeService) Moods(ctx context.Context) ([]domain.Mood, error) {
	return s.moodsFn(ctx)
}

func (s *stubRecipeService) Create(ctx context.Context, in ports.RecipeInput) (*domain.Recipe, error) {
	return s.createFn(ctx, in)
}

func (s *stubRecipeService) Update(ctx context.Context, id string, in ports.RecipeInput) (*domain.Recipe, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubRecipeService) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	return s.toggleFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
