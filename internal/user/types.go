package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection users are stored in.
// The name predates this service and is shared with the deployed web clients.
const CollectionName = "usersCollection"

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "user"

// User is a user account document.
//
// PasswordHash is write-only at the HTTP boundary: it is stored when a signup
// payload carries a password, and never serialized in responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL     string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
