package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

func newTestCredentialStore() (*CredentialStore, *stubIdentityRepo) {
	repo := newStubIdentityRepo()
	return NewCredentialStore(repo, fastHasher(), zerolog.Nop()), repo
}

func TestCredentialStore_Create_HashesSecret(t *testing.T) {
	store, _ := newTestCredentialStore()

	identity, err := store.Create(context.Background(), ports.CreateIdentityInput{
		LoginKey: "user@test.com", Secret: "user123", Role: domain.RoleStandard,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if identity.SecretHash == "user123" {
		t.Fatalf("expected secret to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.SecretHash), []byte("user123")); err != nil {
		t.Fatalf("stored hash does not match secret: %v", err)
	}
	if identity.Role != domain.RoleStandard {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestCredentialStore_Create_Validation(t *testing.T) {
	store, _ := newTestCredentialStore()

	cases := []ports.CreateIdentityInput{
		{LoginKey: "", Secret: "x", Role: domain.RoleStandard},
		{LoginKey: "a@b.c", Secret: "", Role: domain.RoleStandard},
		{LoginKey: "a@b.c", Secret: "x", Role: domain.Role("owner")},
		{LoginKey: "a@b.c", Secret: strings.Repeat("x", 73), Role: domain.RoleStandard},
	}
	for _, in := range cases {
		if _, err := store.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}

func TestCredentialStore_Create_Duplicate(t *testing.T) {
	store, _ := newTestCredentialStore()
	in := ports.CreateIdentityInput{LoginKey: "dup@test.com", Secret: "pw", Role: domain.RoleStandard}

	if _, err := store.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := store.Create(context.Background(), in); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCredentialStore_Create_ConcurrentDuplicateOnlyOneWins(t *testing.T) {
	store, repo := newTestCredentialStore()
	in := ports.CreateIdentityInput{LoginKey: "race@test.com", Secret: "pw", Role: domain.RoleStandard}

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(context.Background(), in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrDuplicateKey):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || dupes != workers-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d and %d", workers-1, successes, dupes)
	}
	all, _ := repo.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected exactly one stored identity, got %d", len(all))
	}
}

func TestCredentialStore_Verify(t *testing.T) {
	store, _ := newTestCredentialStore()
	if _, err := store.Create(context.Background(), ports.CreateIdentityInput{
		LoginKey: "admin@test.com", Secret: "admin123", Role: domain.RoleElevated,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	identity, err := store.Verify(context.Background(), "admin@test.com", "admin123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !identity.Role.IsElevated() {
		t.Fatalf("expected elevated identity")
	}

	_, wrongSecret := store.Verify(context.Background(), "admin@test.com", "wrong")
	_, unknownKey := store.Verify(context.Background(), "nobody@test.com", "admin123")
	if !errors.Is(wrongSecret, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong secret: expected ErrInvalidCredentials, got %v", wrongSecret)
	}
	if !errors.Is(unknownKey, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown key: expected ErrInvalidCredentials, got %v", unknownKey)
	}
	if wrongSecret.Error() != unknownKey.Error() {
		t.Fatalf("failures must be indistinguishable: %q vs %q", wrongSecret, unknownKey)
	}
}

func TestCredentialStore_Verify_UnknownKeySurvivesCancelledRequest(t *testing.T) {
	store, _ := newTestCredentialStore()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Verify(cancelled, "nobody@test.com", "pw"); err == nil {
		t.Fatalf("expected an error for a cancelled request")
	}

	for i := 0; i < 2; i++ {
		if _, err := store.Verify(context.Background(), "nobody@test.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}
	if store.decoy == "" {
		t.Fatalf("expected decoy hash to be kept after a successful build")
	}
}

func TestCredentialStore_Verify_StorageErrorPropagates(t *testing.T) {
	store, repo := newTestCredentialStore()
	repo.err = domain.ErrStorage

	if _, err := store.Verify(context.Background(), "a@b.c", "x"); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestPasswordHasher_CancelledContext(t *testing.T) {
	h := NewPasswordHasher(1)
	h.cost = bcrypt.MinCost
	if err := h.sem.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer h.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.Hash(ctx, "pw"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPasswordHasher_CompareOverlongSecret(t *testing.T) {
	h := fastHasher()
	secret := strings.Repeat("s", maxSecretBytes)
	hash, err := h.Hash(context.Background(), secret)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := h.Compare(context.Background(), hash, secret+"extra")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if ok {
		t.Fatalf("a secret longer than %d bytes must not match its prefix", maxSecretBytes)
	}
}

func TestPasswordHasher_UsesFixedCost(t *testing.T) {
	h := NewPasswordHasher(0)
	hash, err := h.Hash(context.Background(), "pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != BcryptCost {
		t.Fatalf("expected cost %d, got %d", BcryptCost, cost)
	}
	ok, err := h.Compare(context.Background(), hash, "pw")
	if err != nil || !ok {
		t.Fatalf("expected match, got %v %v", ok, err)
	}
}
