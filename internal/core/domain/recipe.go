package domain

import (
	"strings"
	"time"
)

// Mood is the category a recipe is filed under.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodEnergetic   Mood = "energetic"
	MoodRelaxed     Mood = "relaxed"
	MoodAdventurous Mood = "adventurous"
)

// DefaultRecipeImage is used when a recipe is saved without an image.
const DefaultRecipeImage = "🍽️"

var knownMoods = map[Mood]struct{}{
	MoodHappy:       {},
	MoodSad:         {},
	MoodEnergetic:   {},
	MoodRelaxed:     {},
	MoodAdventurous: {},
}

// Moods returns the recognised moods in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodEnergetic, MoodRelaxed, MoodAdventurous}
}

// Valid reports whether m belongs to the closed set of moods.
func (m Mood) Valid() bool {
	_, ok := knownMoods[m]
	return ok
}

// Recipe is a catalog record. Visible is a soft-delete flag: hidden recipes are
// kept but never offered to standard users.
type Recipe struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Mood         Mood      `json:"mood" bson:"mood"`
	Ingredients  string    `json:"ingredients" bson:"ingredients"`
	Instructions string    `json:"instructions" bson:"instructions"`
	PrepTime     string    `json:"prep_time" bson:"prep_time"`
	Servings     int       `json:"servings" bson:"servings"`
	Image        string    `json:"image" bson:"image"`
	Visible      bool      `json:"visible" bson:"visible"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Normalize trims free-text fields and fills in the default image.
func (r *Recipe) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Mood = Mood(strings.ToLower(strings.TrimSpace(string(r.Mood))))
	r.Ingredients = strings.TrimSpace(r.Ingredients)
	r.Instructions = strings.TrimSpace(r.Instructions)
	r.PrepTime = strings.TrimSpace(r.PrepTime)
	r.Image = strings.TrimSpace(r.Image)
	if r.Image == "" {
		r.Image = DefaultRecipeImage
	}
}

// Validate checks the mutable fields of a recipe. It does not look at ID,
// Visible or timestamps, which are owned by the repository.
func (r *Recipe) Validate() error {
	var problems []string
	if r.Name == "" {
		problems = append(problems, "name is required")
	}
	if r.Mood == "" {
		problems = append(problems, "mood is required")
	} else if !r.Mood.Valid() {
		problems = append(problems, "mood must be one of: happy sad energetic relaxed adventurous")
	}
	if r.Ingredients == "" {
		problems = append(problems, "ingredients is required")
	}
	if r.Instructions == "" {
		problems = append(problems, "instructions is required")
	}
	if r.PrepTime == "" {
		problems = append(problems, "prep_time is required")
	}
	if r.Servings <= 0 {
		problems = append(problems, "servings must be greater than 0")
	}
	if len(problems) > 0 {
		return NewValidationError(problems...)
	}
	return nil
}

// OrderMoods returns the known moods present in ms, in display order and
// without duplicates.
func OrderMoods(ms []Mood) []Mood {
	present := make(map[Mood]bool, len(ms))
	for _, m := range ms {
		present[m] = true
	}
	out := make([]Mood, 0, len(present))
	for _, m := range Moods() {
		if present[m] {
			out = append(out, m)
		}
	}
	return out
}
