package gallery

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection gallery images are stored in.
const CollectionName = "imageGallery"

// Image is an image gallery entry.
type Image struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	URL       string             `bson:"url" json:"url"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
