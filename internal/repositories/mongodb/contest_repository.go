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

var _ repositories.ContestRepository = (*ContestRepository)(nil)

// ContestRepository handles MongoDB operations for Contest
type ContestRepository struct {
	collection *mongo.Collection
}

// NewContestRepository creates a new ContestRepository
func NewContestRepository(db *mongo.Database) *ContestRepository {
	return &ContestRepository{
		collection: db.Collection("contests"),
	}
}

// Create inserts a new contest
func (r *ContestRepository) Create(ctx context.Context, contest *models.Contest) error {
	contest.ID = primitive.NewObjectID()
	contest.CreatedAt = time.Now()
	contest.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, contest)
	return err
}

// FindByID finds a contest by ID
func (r *ContestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	var contest models.Contest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contest)
	if err != nil {
		return nil, err
	}
	return &contest, nil
}

// FindApproved retrieves approved contests, optionally filtered by category
func (r *ContestRepository) FindApproved(ctx context.Context, category string, page, limit int) ([]*models.Contest, error) {
	filter := bson.M{"status": models.ContestStatusApproved}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	return r.find(ctx, filter, opts)
}

// FindPopular retrieves the approved contests with the most participants
func (r *ContestRepository) FindPopular(ctx context.Context, limit int) ([]*models.Contest, error) {
	filter := bson.M{"status": models.ContestStatusApproved}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"participants": -1})

	return r.find(ctx, filter, opts)
}

// FindByCreator retrieves all contests owned by a creator, any status
func (r *ContestRepository) FindByCreator(ctx context.Context, email string) ([]*models.Contest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.find(ctx, bson.M{"creator.email": email}, opts)
}

// FindAll retrieves contests of any status with pagination
func (r *ContestRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Contest, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	return r.find(ctx, bson.M{}, opts)
}

// Update replaces a contest document
func (r *ContestRepository) Update(ctx context.Context, contest *models.Contest) error {
	contest.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": contest.ID}, contest)
	return err
}

// UpdateStatus sets the lifecycle status of a contest
func (r *ContestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetWinner writes the denormalized winner summary onto the contest
func (r *ContestRepository) SetWinner(ctx context.Context, id primitive.ObjectID, winner *models.ContestWinner) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"winner": winner, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementParticipants atomically increments the participant counter
func (r *ContestRepository) IncrementParticipants(ctx context.Context, id primitive.ObjectID, delta int) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"participants": delta}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a contest by ID
func (r *ContestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all contests
func (r *ContestRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ContestRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Contest, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contests []*models.Contest
	if err = cursor.All(ctx, &contests); err != nil {
		return nil, err
	}
	if contests == nil {
		contests = []*models.Contest{}
	}
	return contests, nil
}
