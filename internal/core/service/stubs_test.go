package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

func fastHasher() *PasswordHasher {
	h := NewPasswordHasher(0)
	h.cost = bcrypt.MinCost
	return h
}

// ---------------------------------------------------------------------------
// Identity repository stub
// ---------------------------------------------------------------------------

type stubIdentityRepo struct {
	mu    sync.Mutex
	byKey map[string]*domain.Identity
	seq   int
	err   error // if set, every call returns this error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byKey: make(map[string]*domain.Identity)}
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.byKey[identity.LoginKey]; exists {
		return nil, domain.ErrDuplicateKey
	}
	r.seq++
	clone := *identity
	clone.ID = fmt.Sprintf("id-%d", r.seq)
	r.byKey[clone.LoginKey] = &clone
	out := clone
	return &out, nil
}

func (r *stubIdentityRepo) FindByLoginKey(_ context.Context, loginKey string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	identity, ok := r.byKey[loginKey]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	clone := *identity
	return &clone, nil
}

func (r *stubIdentityRepo) List(_ context.Context) ([]*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Identity, 0, len(r.byKey))
	for _, identity := range r.byKey {
		clone := *identity
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Session store stub
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	deletes  int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, key string, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = *session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, key string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[key]
	if !ok {
		return nil, domain.ErrSessionMissing
	}
	return &session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	delete(s.sessions, key)
	return nil
}

func (s *stubSessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ---------------------------------------------------------------------------
// Recipe repository stub
// ---------------------------------------------------------------------------

type stubRecipeRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Recipe
	order   []string
	seq     int
	listErr error
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{byID: make(map[string]*domain.Recipe)}
}

func (r *stubRecipeRepo) add(name string, mood domain.Mood, visible bool) *domain.Recipe {
	rec := &domain.Recipe{
		Name:         name,
		Mood:         mood,
		Ingredients:  "things",
		Instructions: "do things",
		PrepTime:     "5 minutes",
		Servings:     1,
		Image:        domain.DefaultRecipeImage,
		Visible:      visible,
	}
	_ = r.Create(context.Background(), rec)
	return rec
}

func (r *stubRecipeRepo) List(_ context.Context) ([]*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Recipe, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRecipeRepo) ListVisible(_ context.Context, mood domain.Mood) ([]*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []*domain.Recipe{}
	for _, id := range r.order {
		rec := r.byID[id]
		if rec.Visible && rec.Mood == mood {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) VisibleMoods(_ context.Context) ([]domain.Mood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[domain.Mood]bool{}
	var out []domain.Mood
	for _, id := range r.order {
		rec := r.byID[id]
		if rec.Visible && !seen[rec.Mood] {
			seen[rec.Mood] = true
			out = append(out, rec.Mood)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) Create(_ context.Context, rec *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rec.ID = fmt.Sprintf("r%d", r.seq)
	clone := *rec
	r.byID[rec.ID] = &clone
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *stubRecipeRepo) Update(_ context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[rec.ID]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	updated := *rec
	updated.Visible = existing.Visible
	updated.CreatedAt = existing.CreatedAt
	r.byID[rec.ID] = &updated
	out := updated
	return &out, nil
}

func (r *stubRecipeRepo) ToggleVisibility(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return false, domain.ErrRecipeNotFound
	}
	rec.Visible = !rec.Visible
	return rec.Visible, nil
}

func (r *stubRecipeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}
