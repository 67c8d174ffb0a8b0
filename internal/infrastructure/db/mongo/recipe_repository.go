package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

const collectionRecipes = "recipes"

type RecipeRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(collectionRecipes), now: time.Now}
}

type recipeDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Mood         string             `bson:"mood"`
	Ingredients  string             `bson:"ingredients"`
	Instructions string             `bson:"instructions"`
	PrepTime     string             `bson:"prep_time"`
	Servings     int                `bson:"servings"`
	Image        string             `bson:"image"`
	Visible      bool               `bson:"visible"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d recipeDoc) toDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Mood:         domain.Mood(d.Mood),
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		PrepTime:     d.PrepTime,
		Servings:     d.Servings,
		Image:        d.Image,
		Visible:      d.Visible,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func recipeIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "mood", Value: 1}, {Key: "visible", Value: 1}}},
		{Keys: bson.D{{Key: "mood", Value: 1}, {Key: "name", Value: 1}}},
	}
}

// mutableFields is the $set document for an update. visible and created_at
// are never set here.
func mutableFields(r *domain.Recipe, now time.Time) bson.D {
	return bson.D{
		{Key: "name", Value: r.Name},
		{Key: "mood", Value: string(r.Mood)},
		{Key: "ingredients", Value: r.Ingredients},
		{Key: "instructions", Value: r.Instructions},
		{Key: "prep_time", Value: r.PrepTime},
		{Key: "servings", Value: r.Servings},
		{Key: "image", Value: r.Image},
		{Key: "updated_at", Value: now},
	}
}

// togglePipeline negates visible on the server. An aggregation-pipeline update
// reads and writes the field in one document-level atomic operation.
func togglePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "visible", Value: bson.D{{Key: "$not", Value: bson.A{"$visible"}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
}

func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.find(ctx, "list recipes", bson.M{},
		options.Find().SetSort(bson.D{{Key: "mood", Value: 1}, {Key: "name", Value: 1}}))
}

func (r *RecipeRepository) ListVisible(ctx context.Context, mood domain.Mood) ([]*domain.Recipe, error) {
	return r.find(ctx, "list visible recipes", bson.M{"mood": string(mood), "visible": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *RecipeRepository) VisibleMoods(ctx context.Context) ([]domain.Mood, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.col.Distinct(ctx, "mood", bson.M{"visible": true})
	if err != nil {
		return nil, storageErr("list moods", err)
	}
	moods := make([]domain.Mood, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			moods = append(moods, domain.Mood(s))
		}
	}
	return domain.OrderMoods(moods), nil
}

func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := r.now().UTC().Truncate(time.Millisecond)
	doc := recipeDoc{
		ID:           primitive.NewObjectID(),
		Name:         rec.Name,
		Mood:         string(rec.Mood),
		Ingredients:  rec.Ingredients,
		Instructions: rec.Instructions,
		PrepTime:     rec.PrepTime,
		Servings:     rec.Servings,
		Image:        rec.Image,
		Visible:      rec.Visible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return storageErr("insert recipe", err)
	}
	rec.ID = doc.ID.Hex()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return nil
}

func (r *RecipeRepository) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(rec.ID)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc recipeDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: mutableFields(rec, r.now().UTC().Truncate(time.Millisecond))}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, storageErr("update recipe", err)
	}
	return doc.toDomain(), nil
}

func (r *RecipeRepository) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out struct {
		Visible bool `bson:"visible"`
	}
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		togglePipeline(),
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"visible": 1}),
	).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, domain.ErrRecipeNotFound
		}
		return false, storageErr("toggle recipe", err)
	}
	return out.Visible, nil
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storageErr("count recipes", err)
	}
	return n, nil
}

func (r *RecipeRepository) find(ctx context.Context, op string, filter any, opts *options.FindOptions) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer cursor.Close(ctx)

	var docs []recipeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storageErr(op, err)
	}
	out := make([]*domain.Recipe, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
