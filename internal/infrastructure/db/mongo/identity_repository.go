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

const collectionIdentities = "identities"

type IdentityRepository struct {
	col *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(collectionIdentities)}
}

type identityDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	LoginKey   string             `bson:"login_key"`
	SecretHash string             `bson:"secret_hash"`
	Role       string             `bson:"role"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d identityDoc) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:         d.ID.Hex(),
		LoginKey:   d.LoginKey,
		SecretHash: d.SecretHash,
		Role:       domain.Role(d.Role),
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func identityIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "login_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}
}

// Create depends on the unique login_key index; a lost race surfaces as a
// duplicate key error from the insert itself.
func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	createdAt := identity.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	doc := identityDoc{
		ID:         primitive.NewObjectID(),
		LoginKey:   identity.LoginKey,
		SecretHash: identity.SecretHash,
		Role:       string(identity.Role),
		CreatedAt:  createdAt.UTC().Truncate(time.Millisecond),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, storageErr("insert identity", err)
	}
	return doc.toDomain(), nil
}

func (r *IdentityRepository) FindByLoginKey(ctx context.Context, loginKey string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.col.FindOne(ctx, bson.M{"login_key": loginKey}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, storageErr("find identity", err)
	}
	return doc.toDomain(), nil
}

func (r *IdentityRepository) List(ctx context.Context) ([]*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, storageErr("list identities", err)
	}
	defer cursor.Close(ctx)

	var docs []identityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storageErr("decode identities", err)
	}
	out := make([]*domain.Identity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
