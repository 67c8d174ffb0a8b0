package ports

import (
	"context"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// RecipeInput is the full set of mutable recipe fields.
type RecipeInput struct {
	Name         string
	Mood         string
	Ingredients  string
	Instructions string
	PrepTime     string
	Servings     int
	Image        string
}

// RecipeService defines the catalog use cases.
type RecipeService interface {
	ListAll(ctx context.Context) ([]*domain.Recipe, error)
	ListVisible(ctx context.Context, mood string) ([]*domain.Recipe, error)
	// Pick returns one visible recipe of the mood chosen uniformly at random,
	// or domain.ErrNoneAvailable.
	Pick(ctx context.Context, mood string) (*domain.Recipe, error)
	Moods(ctx context.Context) ([]domain.Mood, error)
	Create(ctx context.Context, input RecipeInput) (*domain.Recipe, error)
	Update(ctx context.Context, id string, input RecipeInput) (*domain.Recipe, error)
	ToggleVisibility(ctx context.Context, id string) (bool, error)
}
