package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heshima/studio-api/internal/core/domain"
)

// RoleRepository persists the named roles used for authorization.
type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

// FindOrCreate returns the role with the given name, creating it on first
// use. The upsert against the unique name index makes concurrent bootstrap
// attempts converge on a single document per name.
func (r *RoleRepository) FindOrCreate(ctx context.Context, name string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc roleDoc
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("find or create role %q: %w", name, err)
	}

	return &domain.Role{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

// EnsureIndexes creates the unique name index on the roles collection.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
