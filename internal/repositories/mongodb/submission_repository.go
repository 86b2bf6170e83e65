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

var _ repositories.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository handles MongoDB operations for Submission
type SubmissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{
		collection: db.Collection("submissions"),
	}
}

// Create inserts a new submission
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	submission.ID = primitive.NewObjectID()
	submission.SubmittedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

// FindByContestAndEmail finds a submission by its natural key
func (r *SubmissionRepository) FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error) {
	var submission models.Submission
	filter := bson.M{"contestId": contestID, "email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&submission)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &submission, nil
}

// FindByContest retrieves all submissions for a contest, newest first
func (r *SubmissionRepository) FindByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error) {
	return r.find(ctx, bson.M{"contestId": contestID})
}

// FindByEmail retrieves all submissions made by a participant
func (r *SubmissionRepository) FindByEmail(ctx context.Context, email string) ([]*models.Submission, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *SubmissionRepository) find(ctx context.Context, filter bson.M) ([]*models.Submission, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*models.Submission
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, nil
}
