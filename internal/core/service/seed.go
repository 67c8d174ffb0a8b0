package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// SeedAccount is an identity to ensure at startup. Empty LoginKey or Secret
// means the account is skipped.
type SeedAccount struct {
	LoginKey string
	Secret   string
	Role     domain.Role
}

// Seeder loads starter data into a fresh deployment.
type Seeder struct {
	auth    ports.AuthService
	recipes ports.RecipeService
	repo    ports.RecipeRepository
	logger  zerolog.Logger
}

func NewSeeder(auth ports.AuthService, recipes ports.RecipeService, repo ports.RecipeRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{auth: auth, recipes: recipes, repo: repo, logger: logger}
}

// Accounts creates each account that does not exist yet.
func (s *Seeder) Accounts(ctx context.Context, accounts ...SeedAccount) error {
	for _, a := range accounts {
		if a.LoginKey == "" || a.Secret == "" {
			continue
		}
		_, err := s.auth.CreateIdentity(ctx, ports.CreateIdentityInput{
			LoginKey: a.LoginKey,
			Secret:   a.Secret,
			Role:     a.Role,
		})
		switch {
		case errors.Is(err, domain.ErrDuplicateKey):
			s.logger.Debug().Str("email", a.LoginKey).Msg("seed account already present")
		case err != nil:
			return fmt.Errorf("seed account %s: %w", a.LoginKey, err)
		}
	}
	return nil
}

// Recipes inserts recipes only when the catalog is empty. It returns the
// number inserted.
func (s *Seeder) Recipes(ctx context.Context, recipes []ports.RecipeInput) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, r := range recipes {
		if _, err := s.recipes.Create(ctx, r); err != nil {
			return i, fmt.Errorf("seed recipe %q: %w", r.Name, err)
		}
	}
	s.logger.Info().Int("count", len(recipes)).Msg("sample recipes loaded")
	return len(recipes), nil
}
