package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines the interface for user persistence operations.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
}

// MongoRepository implements Repository backed by a MongoDB collection.
//
// Email uniqueness relies on the unique index created at startup; the
// duplicate-key error from an insert is the single source of truth for
// "user already exists", so there is no read-then-write race.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a Mongo-backed user repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

// List returns all user documents.
func (r *MongoRepository) List(ctx context.Context) ([]User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// GetByEmail returns the user with the given email (exact, case-sensitive match).
// Returns ErrNotFound if no user matches.
func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying user %s: %w", email, err)
	}
	return &u, nil
}

// Create inserts a new user document, setting its ID and creation time.
// Returns ErrEmailExists if a user with the same email already exists.
func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	u.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}
