package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// AdminRecipeHandler manages the catalog. Every route is behind
// RequireElevated.
type AdminRecipeHandler struct {
	recipes ports.RecipeService
}

func NewAdminRecipeHandler(recipes ports.RecipeService) *AdminRecipeHandler {
	return &AdminRecipeHandler{recipes: recipes}
}

// List returns every recipe, hidden ones included.
//
// @Summary      List all recipes
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Recipe
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/recipes [get]
func (h *AdminRecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipes.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Create adds a visible recipe.
//
// @Summary      Create recipe
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      recipeRequest  true  "Recipe"
// @Success      200   {object}  domain.Recipe
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/admin/recipes [post]
func (h *AdminRecipeHandler) Create(c echo.Context) error {
	var req recipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipe, err := h.recipes.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Update replaces every mutable field of a recipe. Visibility is unchanged.
//
// @Summary      Update recipe
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Recipe ID"
// @Param        body  body      recipeRequest  true  "Recipe"
// @Success      200   {object}  domain.Recipe
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/recipes/{id} [put]
func (h *AdminRecipeHandler) Update(c echo.Context) error {
	var req recipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipe, err := h.recipes.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// Toggle flips a recipe's visibility.
//
// @Summary      Toggle recipe visibility
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  toggleResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/recipes/{id}/toggle [patch]
func (h *AdminRecipeHandler) Toggle(c echo.Context) error {
	id := c.Param("id")
	visible, err := h.recipes.ToggleVisibility(c.Request().Context(), id)
	if err != nil {
		return err
	}

	msg := "recipe deactivated"
	if visible {
		msg = "recipe activated"
	}
	return c.JSON(http.StatusOK, toggleResponse{ID: id, Visible: visible, Message: msg})
}
