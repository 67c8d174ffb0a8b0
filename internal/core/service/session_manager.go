package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

const tokenBytes = 32

// SessionManager issues, resolves and ends opaque session tokens on top of a
// SessionStore. Sessions live for domain.SessionTTL from issuance.
type SessionManager struct {
	store  ports.SessionStore
	ttl    time.Duration
	now    func() time.Time
	random io.Reader
}

func NewSessionManager(store ports.SessionStore) *SessionManager {
	return &SessionManager{
		store:  store,
		ttl:    domain.SessionTTL,
		now:    time.Now,
		random: rand.Reader,
	}
}

// Begin stores a new session for identity and returns its token.
func (m *SessionManager) Begin(ctx context.Context, identity *domain.Identity) (string, *domain.Session, error) {
	raw := make([]byte, tokenBytes)
	if _, err := io.ReadFull(m.random, raw); err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	issued := m.now().UTC()
	session := &domain.Session{
		IdentityID: identity.ID,
		LoginKey:   identity.LoginKey,
		Role:       identity.Role,
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(m.ttl),
	}
	if err := m.store.Put(ctx, TokenDigest(token), session); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Resolve returns the live session behind token. Unknown and expired tokens
// both yield domain.ErrSessionMissing.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionMissing
	}
	key := TokenDigest(token)
	session, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if session.ExpiredAt(m.now()) {
		if derr := m.store.Delete(ctx, key); derr != nil && !errors.Is(derr, context.Canceled) {
			return nil, derr
		}
		return nil, domain.ErrSessionMissing
	}
	return session, nil
}

// End removes the session behind token. Ending an unknown token is a no-op.
func (m *SessionManager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, TokenDigest(token))
}

// TokenDigest is the storage key for a token.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
