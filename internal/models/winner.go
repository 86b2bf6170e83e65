package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner records the declared winner of a contest. At most one winner
// record may exist per contest.
type Winner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID   primitive.ObjectID `bson:"contestId" json:"contestId"`
	ContestName string             `bson:"contestName" json:"contestName"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Prize       string             `bson:"prize" json:"prize"`
	DeclaredAt  time.Time          `bson:"declaredAt" json:"declaredAt"`
}
