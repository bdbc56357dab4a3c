package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heshima/studio-api/internal/core/domain"
)

const (
	collectionUsers = "users"
	collectionRoles = "roles"
)

// UserRepository persists identities. Users hold a reference to their role;
// FindByEmail resolves it so callers always see a populated Role.
type UserRepository struct {
	users *mongo.Collection
	roles *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users: db.Collection(collectionUsers),
		roles: db.Collection(collectionRoles),
	}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	RoleID       primitive.ObjectID `bson:"role_id"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type roleDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// FindByEmail returns the user with their role resolved.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu userDoc
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var mr roleDoc
	if err := r.roles.FindOne(ctx, bson.M{"_id": mu.RoleID}).Decode(&mr); err != nil {
		return nil, fmt.Errorf("resolve user role: %w", err)
	}

	return &domain.User{
		ID:           mu.ID.Hex(),
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role{ID: mr.ID.Hex(), Name: mr.Name},
		CreatedAt:    mu.CreatedAt,
	}, nil
}

// Insert stores a new user. The user's role must already exist.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	roleID, err := primitive.ObjectIDFromHex(user.Role.ID)
	if err != nil {
		return fmt.Errorf("insert user: bad role id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		RoleID:       roleID,
		CreatedAt:    user.CreatedAt.UTC(),
	}

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// EnsureIndexes creates the unique email index on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
