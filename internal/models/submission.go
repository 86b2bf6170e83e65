package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one task submission. At most one submission may exist per
// (contest, submitter email) pair.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID   primitive.ObjectID `bson:"contestId" json:"contestId"`
	ContestName string             `bson:"contestName" json:"contestName"`
	Prize       string             `bson:"prize" json:"prize"`
	Task        string             `bson:"task" json:"task"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Status      string             `bson:"status" json:"status"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}
