package blog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines the interface for blog post persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, p *Post) error
}

// MongoRepository implements Repository backed by a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a Mongo-backed blog repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

// List returns all blog post documents.
func (r *MongoRepository) List(ctx context.Context) ([]Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decoding blog posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new post document, setting its ID and creation time.
func (r *MongoRepository) Create(ctx context.Context, p *Post) error {
	p.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("inserting blog post: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}
