package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the durable record of one settled payment. TransactionID is the
// provider's payment-intent reference and acts as the idempotency key:
// exactly one order may exist per transaction. Orders are never updated.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID     primitive.ObjectID `bson:"contestId" json:"contestId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name" json:"name"`
	Category      string             `bson:"category" json:"category"`
	Instructions  string             `bson:"instructions" json:"instructions"`
	Price         float64            `bson:"price" json:"price"`
	Prize         string             `bson:"prize" json:"prize"`
	Deadline      time.Time          `bson:"deadline" json:"deadline"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
