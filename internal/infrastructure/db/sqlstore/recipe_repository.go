package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/ids"
)

const recipeColumns = `id, name, mood, ingredients, instructions, prep_time, servings, image, visible, created_at, updated_at`

type RecipeRepository struct {
	db  *DB
	now func() time.Time
}

func NewRecipeRepository(db *DB) *RecipeRepository {
	return &RecipeRepository{db: db, now: time.Now}
}

func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.query(ctx, "list recipes",
		`SELECT `+recipeColumns+` FROM recipes ORDER BY mood, name, id`)
}

func (r *RecipeRepository) ListVisible(ctx context.Context, mood domain.Mood) ([]*domain.Recipe, error) {
	return r.query(ctx, "list visible recipes",
		`SELECT `+recipeColumns+` FROM recipes WHERE mood = ? AND visible = TRUE ORDER BY name, id`,
		string(mood))
}

func (r *RecipeRepository) VisibleMoods(ctx context.Context) ([]domain.Mood, error) {
	rows, err := r.db.sql.QueryContext(ctx, `SELECT DISTINCT mood FROM recipes WHERE visible = TRUE`)
	if err != nil {
		return nil, storageErr("list moods", err)
	}
	defer rows.Close()

	var moods []domain.Mood
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, storageErr("scan mood", err)
		}
		moods = append(moods, domain.Mood(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list moods", err)
	}
	return domain.OrderMoods(moods), nil
}

func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) error {
	now := r.now().UTC().Truncate(time.Millisecond)
	id := ids.New()

	_, err := r.db.sql.ExecContext(ctx,
		r.db.rebind(`INSERT INTO recipes (`+recipeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, rec.Name, string(rec.Mood), rec.Ingredients, rec.Instructions, rec.PrepTime,
		rec.Servings, rec.Image, rec.Visible, toMillis(now), toMillis(now),
	)
	if err != nil {
		return storageErr("insert recipe", err)
	}
	rec.ID = id
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return nil
}

// Update is a single UPDATE ... RETURNING so a concurrent toggle can never be
// overwritten with a stale visible value.
func (r *RecipeRepository) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	now := r.now().UTC().Truncate(time.Millisecond)

	var (
		visible   bool
		createdAt int64
	)
	err := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`UPDATE recipes
			SET name = ?, mood = ?, ingredients = ?, instructions = ?, prep_time = ?, servings = ?, image = ?, updated_at = ?
			WHERE id = ?
			RETURNING visible, created_at`),
		rec.Name, string(rec.Mood), rec.Ingredients, rec.Instructions, rec.PrepTime,
		rec.Servings, rec.Image, toMillis(now), rec.ID,
	).Scan(&visible, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, storageErr("update recipe", err)
	}

	updated := *rec
	updated.Visible = visible
	updated.CreatedAt = fromMillis(createdAt)
	updated.UpdatedAt = now
	return &updated, nil
}

// ToggleVisibility negates the stored flag inside the database. Concurrent
// toggles serialise on the row and each caller sees the value its own
// statement committed.
func (r *RecipeRepository) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	var visible bool
	err := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`UPDATE recipes SET visible = NOT visible, updated_at = ? WHERE id = ? RETURNING visible`),
		toMillis(r.now()), id,
	).Scan(&visible)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrRecipeNotFound
		}
		return false, storageErr("toggle recipe", err)
	}
	return visible, nil
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, storageErr("count recipes", err)
	}
	return n, nil
}

func (r *RecipeRepository) query(ctx context.Context, op, query string, args ...any) ([]*domain.Recipe, error) {
	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	out := []*domain.Recipe{}
	for rows.Next() {
		var (
			rec                  domain.Recipe
			mood                 string
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &mood, &rec.Ingredients, &rec.Instructions, &rec.PrepTime,
			&rec.Servings, &rec.Image, &rec.Visible, &createdAt, &updatedAt); err != nil {
			return nil, storageErr(op, err)
		}
		rec.Mood = domain.Mood(mood)
		rec.CreatedAt = fromMillis(createdAt)
		rec.UpdatedAt = fromMillis(updatedAt)
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return out, nil
}
