package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

func validInput() ports.RecipeInput {
	return ports.RecipeInput{
		Name:         "Soup",
		Mood:         "sad",
		Ingredients:  "water, salt",
		Instructions: "boil",
		PrepTime:     "10 minutes",
		Servings:     2,
	}
}

func TestRecipeService_Create_StartsVisibleWithDefaultImage(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	in := validInput()
	in.Mood = " SAD "
	recipe, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !recipe.Visible {
		t.Fatalf("new recipes must start visible")
	}
	if recipe.Image != domain.DefaultRecipeImage {
		t.Fatalf("expected default image, got %q", recipe.Image)
	}
	if recipe.Mood != domain.MoodSad {
		t.Fatalf("expected normalised mood, got %q", recipe.Mood)
	}
	if recipe.ID == "" {
		t.Fatalf("expected an ID to be assigned")
	}
}

func TestRecipeService_Create_Validation(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	in := validInput()
	in.Name = ""
	in.Servings = 0
	_, err := svc.Create(context.Background(), in)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", verr.Problems)
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("invalid input must not be stored")
	}
}

func TestRecipeService_Update(t *testing.T) {
	repo := newStubRecipeRepo()
	hidden := repo.add("Old", domain.MoodSad, false)
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	in := validInput()
	in.Name = "New"
	updated, err := svc.Update(context.Background(), hidden.ID, in)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "New" {
		t.Fatalf("expected name to change, got %q", updated.Name)
	}
	if updated.Visible {
		t.Fatalf("Update must not change visibility")
	}
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", validInput()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRecipeService_Update_ValidationBeforeLookup(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), nil, zerolog.Nop())

	in := validInput()
	in.Mood = "grumpy"
	if _, err := svc.Update(context.Background(), "missing", in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecipeService_ToggleVisibility_HidesFromPick(t *testing.T) {
	repo := newStubRecipeRepo()
	r1 := repo.add("R1", domain.MoodHappy, true)
	repo.add("R2", domain.MoodHappy, true)
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	visible, err := svc.ToggleVisibility(context.Background(), r1.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}
	if visible {
		t.Fatalf("expected visible=false after first toggle")
	}

	for i := 0; i < 50; i++ {
		picked, err := svc.Pick(context.Background(), "happy")
		if err != nil {
			t.Fatalf("Pick: %v", err)
		}
		if picked.Name != "R2" {
			t.Fatalf("hidden recipe was picked")
		}
	}

	all, _ := svc.ListAll(context.Background())
	if len(all) != 2 {
		t.Fatalf("ListAll must include hidden recipes, got %d", len(all))
	}

	visible, err = svc.ToggleVisibility(context.Background(), r1.ID)
	if err != nil || !visible {
		t.Fatalf("expected visible=true after second toggle, got %v %v", visible, err)
	}
}

func TestRecipeService_ToggleVisibility_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), nil, zerolog.Nop())

	if _, err := svc.ToggleVisibility(context.Background(), "nope"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRecipeService_Pick_NoneAvailable(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.add("Hidden", domain.MoodRelaxed, false)
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	for _, mood := range []string{"relaxed", "adventurous", "grumpy"} {
		if _, err := svc.Pick(context.Background(), mood); !errors.Is(err, domain.ErrNoneAvailable) {
			t.Fatalf("mood %q: expected ErrNoneAvailable, got %v", mood, err)
		}
	}
}

func TestRecipeService_ListVisible_UnknownMoodIsEmpty(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.add("A", domain.MoodHappy, true)
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	list, err := svc.ListVisible(context.Background(), "grumpy")
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", list)
	}
}

func TestRecipeService_Moods(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.add("A", domain.MoodHappy, true)
	repo.add("B", domain.MoodSad, false)
	svc := NewRecipeService(repo, nil, zerolog.Nop())

	moods, err := svc.Moods(context.Background())
	if err != nil {
		t.Fatalf("Moods: %v", err)
	}
	if len(moods) != 1 || moods[0] != domain.MoodHappy {
		t.Fatalf("expected [happy], got %v", moods)
	}
}

func TestSeeder(t *testing.T) {
	recipeRepo := newStubRecipeRepo()
	recipes := NewRecipeService(recipeRepo, nil, zerolog.Nop())
	auth := NewAuthService(
		NewCredentialStore(newStubIdentityRepo(), fastHasher(), zerolog.Nop()),
		NewSessionManager(newStubSessionStore()),
		zerolog.Nop(),
	)
	seeder := NewSeeder(auth, recipes, recipeRepo, zerolog.Nop())

	admin := SeedAccount{LoginKey: "admin@test.com", Secret: "admin123", Role: domain.RoleElevated}
	for i := 0; i < 2; i++ {
		if err := seeder.Accounts(context.Background(), admin, SeedAccount{}); err != nil {
			t.Fatalf("Accounts run %d: %v", i, err)
		}
	}
	identities, _ := auth.ListIdentities(context.Background())
	if len(identities) != 1 {
		t.Fatalf("expected 1 seeded identity, got %d", len(identities))
	}

	n, err := seeder.Recipes(context.Background(), SampleRecipes)
	if err != nil {
		t.Fatalf("Recipes: %v", err)
	}
	if n != len(SampleRecipes) {
		t.Fatalf("expected %d recipes seeded, got %d", len(SampleRecipes), n)
	}
	if n, _ := seeder.Recipes(context.Background(), SampleRecipes); n != 0 {
		t.Fatalf("seeding a non-empty catalog must be a no-op, inserted %d", n)
	}
	moods, _ := recipes.Moods(context.Background())
	if len(moods) != len(domain.Moods()) {
		t.Fatalf("sample recipes should cover every mood, got %v", moods)
	}
}

func TestSampleRecipes_ValidAndSpreadAcrossMoods(t *testing.T) {
	perMood := map[domain.Mood]int{}
	names := map[string]bool{}
	for _, in := range SampleRecipes {
		r := recipeFromInput(in)
		if err := r.Validate(); err != nil {
			t.Fatalf("sample %q invalid: %v", in.Name, err)
		}
		if names[in.Name] {
			t.Fatalf("duplicate sample %q", in.Name)
		}
		names[in.Name] = true
		perMood[r.Mood]++
	}
	for _, m := range domain.Moods() {
		if perMood[m] < 5 {
			t.Fatalf("mood %s has only %d sample recipes", m, perMood[m])
		}
	}
}
