package mongodb

import (
	"context"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.CreatorRequestRepository = (*CreatorRequestRepository)(nil)

// CreatorRequestRepository handles MongoDB operations for CreatorRequest
type CreatorRequestRepository struct {
	collection *mongo.Collection
}

// NewCreatorRequestRepository creates a new CreatorRequestRepository
func NewCreatorRequestRepository(db *mongo.Database) *CreatorRequestRepository {
	return &CreatorRequestRepository{
		collection: db.Collection("creator_requests"),
	}
}

// Create inserts a new creator request
func (r *CreatorRequestRepository) Create(ctx context.Context, request *models.CreatorRequest) error {
	request.ID = primitive.NewObjectID()
	request.RequestedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, request)
	return err
}

// FindByEmail finds a pending request by requester email
func (r *CreatorRequestRepository) FindByEmail(ctx context.Context, email string) (*models.CreatorRequest, error) {
	var request models.CreatorRequest
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&request)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &request, nil
}

// FindByID finds a pending request by ID
func (r *CreatorRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CreatorRequest, error) {
	var request models.CreatorRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindAll retrieves the pending request queue, oldest first
func (r *CreatorRequestRepository) FindAll(ctx context.Context) ([]*models.CreatorRequest, error) {
	opts := options.Find().SetSort(bson.M{"requestedAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*models.CreatorRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*models.CreatorRequest{}
	}
	return requests, nil
}

// Delete removes a processed request
func (r *CreatorRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
