package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatorRequest is a pending request to be upgraded to the creator role.
// At most one pending request per email; the record is deleted once an
// admin processes it.
type CreatorRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requestedAt"`
}
