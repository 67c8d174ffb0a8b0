package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/pkg/metrics"
)

// BcryptCost is the fixed bcrypt work factor used for every stored secret.
const BcryptCost = 10

// maxSecretBytes is bcrypt's input limit.
const maxSecretBytes = 72

// PasswordHasher hashes and compares secrets with bcrypt. The number of hashes
// running at once is capped so a burst of logins cannot starve every CPU;
// waiting callers give up when their request context is cancelled.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordHasher returns a hasher allowing maxConcurrent simultaneous
// bcrypt operations. Zero or less means GOMAXPROCS.
func NewPasswordHasher(maxConcurrent int) *PasswordHasher {
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &PasswordHasher{
		cost: BcryptCost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Hash returns the bcrypt hash of secret.
func (h *PasswordHasher) Hash(ctx context.Context, secret string) (string, error) {
	if len(secret) > maxSecretBytes {
		return "", domain.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxSecretBytes))
	}

	start := time.Now()
	defer func() {
		metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	}()

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether secret matches hash. A mismatch is not an error,
// and neither is a secret longer than bcrypt accepts.
func (h *PasswordHasher) Compare(ctx context.Context, hash, secret string) (bool, error) {
	start := time.Now()
	defer func() {
		metrics.PasswordHashDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	}()

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	// No stored secret can exceed the limit, so a longer one never matches.
	// The truncated compare keeps the cost equal to a normal mismatch.
	if len(secret) > maxSecretBytes {
		_ = bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret[:maxSecretBytes]))
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare secret: %w", err)
	}
}
