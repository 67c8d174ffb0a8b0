package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
	"github.com/moodmenu/recipe-api/internal/pkg/metrics"
)

// CredentialStore creates identities and verifies their secrets.
type CredentialStore struct {
	repo   ports.IdentityRepository
	hasher *PasswordHasher
	now    func() time.Time
	log    zerolog.Logger

	// decoy is compared against when the login key is unknown so that a
	// missing identity costs the same as a wrong secret. Only a successful
	// hash is kept.
	decoyMu sync.Mutex
	decoy   string
}

func NewCredentialStore(repo ports.IdentityRepository, hasher *PasswordHasher, log zerolog.Logger) *CredentialStore {
	if hasher == nil {
		hasher = NewPasswordHasher(0)
	}
	return &CredentialStore{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
		log:    log,
	}
}

// Create registers a new identity. Two concurrent calls with the same login
// key cannot both succeed; the loser gets domain.ErrDuplicateKey from the
// repository.
func (s *CredentialStore) Create(ctx context.Context, in ports.CreateIdentityInput) (*domain.Identity, error) {
	var problems []string
	if strings.TrimSpace(in.LoginKey) == "" {
		problems = append(problems, "email is required")
	}
	if in.Secret == "" {
		problems = append(problems, "password is required")
	}
	if in.Role != domain.RoleStandard && in.Role != domain.RoleElevated {
		problems = append(problems, "role must be one of: standard elevated")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	hash, err := s.hasher.Hash(ctx, in.Secret)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Identity{
		LoginKey:   in.LoginKey,
		SecretHash: hash,
		Role:       in.Role,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.IdentitiesCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Str("identity_id", created.ID).Str("role", string(created.Role)).Msg("identity created")
	return created, nil
}

// Verify checks secret against the identity stored under loginKey. Unknown
// keys and wrong secrets both yield domain.ErrInvalidCredentials.
func (s *CredentialStore) Verify(ctx context.Context, loginKey, secret string) (*domain.Identity, error) {
	identity, err := s.repo.FindByLoginKey(ctx, loginKey)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, err
		}
		decoy, derr := s.decoyHash(ctx)
		if derr != nil {
			return nil, derr
		}
		if _, cerr := s.hasher.Compare(ctx, decoy, secret); cerr != nil {
			return nil, cerr
		}
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(ctx, identity.SecretHash, secret)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

// List returns all identities. Secret hashes are present on the structs but
// never serialised.
func (s *CredentialStore) List(ctx context.Context) ([]*domain.Identity, error) {
	return s.repo.List(ctx)
}

func (s *CredentialStore) decoyHash(ctx context.Context) (string, error) {
	s.decoyMu.Lock()
	defer s.decoyMu.Unlock()
	if s.decoy != "" {
		return s.decoy, nil
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	// The decoy outlives the request that builds it, so its hash must not
	// depend on that request staying connected.
	hash, err := s.hasher.Hash(context.WithoutCancel(ctx), hex.EncodeToString(b))
	if err != nil {
		return "", err
	}
	s.decoy = hash
	return hash, nil
}
