package handler

import (
	"time"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	IsElevated bool        `json:"is_elevated"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

type statusResponse struct {
	Authenticated bool        `json:"authenticated"`
	Email         string      `json:"email,omitempty"`
	Role          domain.Role `json:"role,omitempty"`
	IsElevated    bool        `json:"is_elevated"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type moodsResponse struct {
	Moods []domain.Mood `json:"moods"`
}

type recipeRequest struct {
	Name         string `json:"name"         validate:"required"`
	Mood         string `json:"mood"         validate:"required"`
	Ingredients  string `json:"ingredients"  validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	PrepTime     string `json:"prep_time"    validate:"required"`
	Servings     int    `json:"servings"     validate:"gt=0"`
	Image        string `json:"image"`
}

func (r recipeRequest) toInput() ports.RecipeInput {
	return ports.RecipeInput{
		Name:         r.Name,
		Mood:         r.Mood,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		PrepTime:     r.PrepTime,
		Servings:     r.Servings,
		Image:        r.Image,
	}
}

type toggleResponse struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

type createIdentityRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role is "standard" (default) or "elevated".
	Role string `json:"role" validate:"omitempty,oneof=standard elevated"`
}
