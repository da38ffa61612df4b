package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection blog posts are stored in.
const CollectionName = "blog"

// Post is a blog post document.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content,omitempty" json:"content,omitempty"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	ImageURL  string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
