package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines the interface for listing persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Listing, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Listing, error)
	Create(ctx context.Context, l *Listing) error

	// Delete removes a listing by ID and returns the number of documents
	// deleted. Deleting an unknown ID is not an error; callers observe a
	// zero count. This keeps the operation idempotent.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoRepository implements Repository backed by a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a Mongo-backed listing repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

// List returns all listing documents.
func (r *MongoRepository) List(ctx context.Context) ([]Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decoding listings: %w", err)
	}
	return listings, nil
}

// Get returns a single listing by ID.
// Returns ErrNotFound if the listing does not exist.
func (r *MongoRepository) Get(ctx context.Context, id primitive.ObjectID) (*Listing, error) {
	var l Listing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying listing %s: %w", id.Hex(), err)
	}
	return &l, nil
}

// Create inserts a new listing document, setting its ID and creation time.
func (r *MongoRepository) Create(ctx context.Context, l *Listing) error {
	l.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, l)
	if err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		l.ID = id
	}
	return nil
}

// Delete removes a listing by ID, returning the deleted count.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("deleting listing %s: %w", id.Hex(), err)
	}
	return result.DeletedCount, nil
}
