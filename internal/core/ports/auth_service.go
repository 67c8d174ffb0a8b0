package ports

import (
	"context"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// CreateIdentityInput carries the fields needed to register a login principal.
type CreateIdentityInput struct {
	LoginKey string
	Secret   string
	Role     domain.Role
}

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	Token    string
	Session  *domain.Session
	Identity *domain.Identity
}

// AuthService covers credentials and sessions.
type AuthService interface {
	Login(ctx context.Context, loginKey, secret string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Resolve returns domain.ErrSessionMissing for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	CreateIdentity(ctx context.Context, input CreateIdentityInput) (*domain.Identity, error)
	ListIdentities(ctx context.Context) ([]*domain.Identity, error)
}
