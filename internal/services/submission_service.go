package services

import (
	"context"
	"errors"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionService handles task submissions
type SubmissionService struct {
	submissionRepo repositories.SubmissionRepository
	contestRepo    repositories.ContestRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(submissionRepo repositories.SubmissionRepository, contestRepo repositories.ContestRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		contestRepo:    contestRepo,
	}
}

// Submit stores a participant's task submission. At most one submission per
// (contest, submitter); a second attempt is rejected with
// ErrDuplicateSubmission and leaves the first untouched.
func (s *SubmissionService) Submit(ctx context.Context, submission *models.Submission) error {
	contest, err := s.contestRepo.FindByID(ctx, submission.ContestID)
	if err != nil {
		return err
	}

	existing, err := s.submissionRepo.FindByContestAndEmail(ctx, submission.ContestID, submission.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if existing != nil {
		return ErrDuplicateSubmission
	}

	submission.ContestName = contest.Name
	submission.Prize = contest.Prize
	submission.Status = "pending"
	return s.submissionRepo.Create(ctx, submission)
}

// ListByContest retrieves submissions for a contest (creator view)
func (s *SubmissionService) ListByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error) {
	return s.submissionRepo.FindByContest(ctx, contestID)
}

// ListByEmail retrieves all submissions made by a participant
func (s *SubmissionService) ListByEmail(ctx context.Context, email string) ([]*models.Submission, error) {
	return s.submissionRepo.FindByEmail(ctx, email)
}
