package ports

import (
	"context"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// IdentityRepository persists login principals.
type IdentityRepository interface {
	// Create inserts the identity, assigning ID and CreatedAt when empty. The
	// uniqueness check on LoginKey must be part of the insert itself:
	// implementations return domain.ErrDuplicateKey when the key is taken.
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	// FindByLoginKey returns domain.ErrIdentityNotFound when no identity matches.
	FindByLoginKey(ctx context.Context, loginKey string) (*domain.Identity, error)
	// List returns every identity, newest first.
	List(ctx context.Context) ([]*domain.Identity, error)
}
