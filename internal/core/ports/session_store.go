package ports

import (
	"context"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// SessionStore is the process-wide keyed session storage. Keys are token
// digests, never raw tokens. All methods must be safe for concurrent use and a
// completed Put must be visible to any later Get.
type SessionStore interface {
	Put(ctx context.Context, key string, session *domain.Session) error
	// Get returns domain.ErrSessionMissing for unknown keys.
	Get(ctx context.Context, key string) (*domain.Session, error)
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}
