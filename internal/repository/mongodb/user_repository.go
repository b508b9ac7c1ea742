package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
)

// ErrDuplicateEmail indicates the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the persistence operations for accounts.
type UserRepository interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdateCrops(ctx context.Context, id primitive.ObjectID, crops []string) error
}

// MongoUserRepository implements UserRepository on a MongoDB collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository binds the repository to the users collection.
func NewUserRepository(client *Client) *MongoUserRepository {
	return &MongoUserRepository{coll: client.Database().Collection("users")}
}

// Insert creates a new account. Duplicate emails surface as ErrDuplicateEmail,
// relying on the collection's unique email index.
func (r *MongoUserRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// FindByEmail looks an account up by its (lowercased) email.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID looks an account up by identity.
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to find user by id: %w", err)
	}
	return user, nil
}

// UpdateCrops replaces the account's selected crop list.
func (r *MongoUserRepository) UpdateCrops(ctx context.Context, id primitive.ObjectID, crops []string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"crops": crops}})
	if err != nil {
		return fmt.Errorf("failed to update crops: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}
