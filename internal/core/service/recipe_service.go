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

type RecipeService struct {
	repo     ports.RecipeRepository
	selector *Selector
	logger   zerolog.Logger
}

func NewRecipeService(repo ports.RecipeRepository, selector *Selector, logger zerolog.Logger) *RecipeService {
	if selector == nil {
		selector = NewSelector(repo)
	}
	return &RecipeService{repo: repo, selector: selector, logger: logger}
}

// ListAll includes hidden recipes and is meant for elevated callers only.
func (s *RecipeService) ListAll(ctx context.Context) ([]*domain.Recipe, error) {
	return s.repo.List(ctx)
}

// ListVisible returns an empty list for moods outside the known set.
func (s *RecipeService) ListVisible(ctx context.Context, mood string) ([]*domain.Recipe, error) {
	m := parseMood(mood)
	if !m.Valid() {
		return []*domain.Recipe{}, nil
	}
	return s.repo.ListVisible(ctx, m)
}

func (s *RecipeService) Pick(ctx context.Context, mood string) (*domain.Recipe, error) {
	m := parseMood(mood)
	if !m.Valid() {
		metrics.RecipePicksTotal.WithLabelValues("unknown", "none_available").Inc()
		return nil, domain.ErrNoneAvailable
	}

	recipe, err := s.selector.Pick(ctx, m)
	switch {
	case errors.Is(err, domain.ErrNoneAvailable):
		metrics.RecipePicksTotal.WithLabelValues(string(m), "none_available").Inc()
		return nil, err
	case err != nil:
		return nil, err
	}
	metrics.RecipePicksTotal.WithLabelValues(string(m), "hit").Inc()
	return recipe, nil
}

func (s *RecipeService) Moods(ctx context.Context) ([]domain.Mood, error) {
	return s.repo.VisibleMoods(ctx)
}

// Create stores a new recipe. New recipes start visible.
func (s *RecipeService) Create(ctx context.Context, input ports.RecipeInput) (*domain.Recipe, error) {
	recipe := recipeFromInput(input)
	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	recipe.Visible = true

	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	s.logger.Info().Str("recipe_id", recipe.ID).Str("mood", string(recipe.Mood)).Msg("recipe created")
	return recipe, nil
}

// Update replaces every mutable field. Visibility is only changed through
// ToggleVisibility.
func (s *RecipeService) Update(ctx context.Context, id string, input ports.RecipeInput) (*domain.Recipe, error) {
	recipe := recipeFromInput(input)
	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	recipe.ID = strings.TrimSpace(id)
	if recipe.ID == "" {
		return nil, domain.ErrRecipeNotFound
	}

	updated, err := s.repo.Update(ctx, recipe)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("recipe_id", updated.ID).Msg("recipe updated")
	return updated, nil
}

// ToggleVisibility flips the recipe's visibility and returns the new value.
func (s *RecipeService) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	visible, err := s.repo.ToggleVisibility(ctx, strings.TrimSpace(id))
	if err != nil {
		return false, err
	}
	if visible {
		metrics.RecipeTogglesTotal.WithLabelValues("true").Inc()
	} else {
		metrics.RecipeTogglesTotal.WithLabelValues("false").Inc()
	}
	s.logger.Info().Str("recipe_id", id).Bool("visible", visible).Msg("recipe visibility toggled")
	return visible, nil
}

func parseMood(s string) domain.Mood {
	return domain.Mood(strings.ToLower(strings.TrimSpace(s)))
}

func recipeFromInput(in ports.RecipeInput) *domain.Recipe {
	return &domain.Recipe{
		Name:         in.Name,
		Mood:         domain.Mood(in.Mood),
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		PrepTime:     in.PrepTime,
		Servings:     in.Servings,
		Image:        in.Image,
	}
}
