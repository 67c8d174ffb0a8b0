package service

import (
	"context"
	"math/rand/v2"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// Selector picks one visible recipe of a mood uniformly at random.
type Selector struct {
	repo ports.RecipeRepository
	intn func(n int) int
}

// NewSelector uses the package-level math/rand/v2 source, which is safe for
// concurrent use.
func NewSelector(repo ports.RecipeRepository) *Selector {
	return &Selector{repo: repo, intn: rand.IntN}
}

// WithSource replaces the random source. intn must return a value in [0, n).
func (s *Selector) WithSource(intn func(n int) int) *Selector {
	s.intn = intn
	return s
}

// Pick returns domain.ErrNoneAvailable when the mood has no visible recipes.
func (s *Selector) Pick(ctx context.Context, mood domain.Mood) (*domain.Recipe, error) {
	candidates, err := s.repo.ListVisible(ctx, mood)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoneAvailable
	}
	return candidates[s.intn(len(candidates))], nil
}
