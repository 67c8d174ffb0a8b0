package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// RecipeHandler serves the catalog to any authenticated user.
type RecipeHandler struct {
	recipes ports.RecipeService
}

func NewRecipeHandler(recipes ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// Moods lists the moods that currently have at least one visible recipe.
//
// @Summary      Available moods
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  moodsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/moods [get]
func (h *RecipeHandler) Moods(c echo.Context) error {
	moods, err := h.recipes.Moods(c.Request().Context())
	if err != nil {
		return err
	}
	if moods == nil {
		moods = []domain.Mood{}
	}
	return c.JSON(http.StatusOK, moodsResponse{Moods: moods})
}

// Pick returns one visible recipe for the mood chosen uniformly at random.
// With ?all=true it returns every visible recipe for the mood instead.
//
// @Summary      Random recipe for a mood
// @Tags         recipes
// @Produce      json
// @Param        mood  path      string  true   "Mood"
// @Param        all   query     bool    false  "Return every visible recipe"
// @Success      200   {object}  domain.Recipe
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/recipes/{mood} [get]
func (h *RecipeHandler) Pick(c echo.Context) error {
	mood := c.Param("mood")

	if c.QueryParam("all") == "true" {
		recipes, err := h.recipes.ListVisible(c.Request().Context(), mood)
		if err != nil {
			return err
		}
		if len(recipes) == 0 {
			return domain.ErrNoneAvailable
		}
		return c.JSON(http.StatusOK, recipes)
	}

	recipe, err := h.recipes.Pick(c.Request().Context(), mood)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}
