package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Role lives in the users collection, not in the token:
// every authorization decision reads it from the directory.
const (
	RoleParticipant = "participant"
	RoleCreator     = "creator"
	RoleAdmin       = "admin"
)

// User represents a verified principal in the platform
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Role         string             `bson:"role" json:"role"`
	Participated int                `bson:"participated" json:"participated"`
	Win          int                `bson:"win" json:"win"`
	Password     string             `bson:"password,omitempty" json:"-"` // bcrypt hash, set only for ops accounts
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin    time.Time          `bson:"lastLogin" json:"lastLogin"`
}
