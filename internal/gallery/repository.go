package gallery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines the interface for gallery image persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Image, error)
	Create(ctx context.Context, img *Image) error

	// Delete removes an image by ID.
	// Returns ErrNotFound if no document matched.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoRepository implements Repository backed by a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a Mongo-backed gallery repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

// List returns all gallery image documents.
func (r *MongoRepository) List(ctx context.Context) ([]Image, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []Image
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("decoding gallery images: %w", err)
	}
	return images, nil
}

// Create inserts a new image document, setting its ID and creation time.
func (r *MongoRepository) Create(ctx context.Context, img *Image) error {
	img.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, img)
	if err != nil {
		return fmt.Errorf("inserting gallery image: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		img.ID = id
	}
	return nil
}

// Delete removes an image by ID.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting gallery image %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
