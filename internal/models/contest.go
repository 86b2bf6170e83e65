package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contest lifecycle statuses
const (
	ContestStatusPending  = "pending"
	ContestStatusApproved = "approved"
	ContestStatusRejected = "rejected"
)

// ContestCreator is a denormalized snapshot of the owning creator
type ContestCreator struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// ContestWinner is the denormalized winner summary written when a winner is declared
type ContestWinner struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Prize string `bson:"prize" json:"prize"`
}

// Contest represents a contest definition
type Contest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Prize        string             `bson:"prize" json:"prize"`
	Instructions string             `bson:"instructions" json:"instructions"`
	Category     string             `bson:"category" json:"category"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	Status       string             `bson:"status" json:"status"`
	Participants int                `bson:"participants" json:"participants"`
	Creator      ContestCreator     `bson:"creator" json:"creator"`
	Winner       *ContestWinner     `bson:"winner,omitempty" json:"winner,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
