package ports

import (
	"context"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// RecipeRepository persists catalog records.
type RecipeRepository interface {
	// List returns every recipe regardless of visibility, ordered by mood then name.
	List(ctx context.Context) ([]*domain.Recipe, error)
	// ListVisible returns only visible recipes of the given mood.
	ListVisible(ctx context.Context, mood domain.Mood) ([]*domain.Recipe, error)
	// VisibleMoods returns the distinct moods that have at least one visible recipe.
	VisibleMoods(ctx context.Context) ([]domain.Mood, error)
	// Create inserts r, assigning ID and timestamps. Visible is stored as given.
	Create(ctx context.Context, r *domain.Recipe) error
	// Update replaces the mutable fields of the recipe with r.ID, leaving
	// Visible and CreatedAt untouched, and returns the stored record.
	// Returns domain.ErrRecipeNotFound when the ID is unknown.
	Update(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	// ToggleVisibility flips Visible in a single atomic storage operation and
	// returns the value that was committed.
	ToggleVisibility(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
