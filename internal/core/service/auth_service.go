package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
	"github.com/moodmenu/recipe-api/internal/pkg/metrics"
)

// AuthService implements login, logout and identity administration on top of
// a CredentialStore and a SessionManager.
type AuthService struct {
	credentials *CredentialStore
	sessions    *SessionManager
	logger      zerolog.Logger
}

func NewAuthService(credentials *CredentialStore, sessions *SessionManager, logger zerolog.Logger) *AuthService {
	return &AuthService{credentials: credentials, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, loginKey, secret string) (*ports.LoginResult, error) {
	loginKey = strings.TrimSpace(loginKey)
	if loginKey == "" || secret == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return nil, domain.NewValidationError("email and password are required")
	}

	identity, err := s.credentials.Verify(ctx, loginKey, secret)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			s.logger.Info().Str("email", loginKey).Msg("login rejected")
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	token, session, err := s.sessions.Begin(ctx, identity)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("identity_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Session: session, Identity: identity}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	return s.sessions.Resolve(ctx, token)
}

func (s *AuthService) CreateIdentity(ctx context.Context, input ports.CreateIdentityInput) (*domain.Identity, error) {
	input.LoginKey = strings.TrimSpace(input.LoginKey)
	return s.credentials.Create(ctx, input)
}

func (s *AuthService) ListIdentities(ctx context.Context) ([]*domain.Identity, error) {
	return s.credentials.List(ctx)
}
