package services

import (
	"context"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContestService handles contest lifecycle business logic
type ContestService struct {
	contestRepo repositories.ContestRepository
}

// NewContestService creates a new ContestService
func NewContestService(contestRepo repositories.ContestRepository) *ContestService {
	return &ContestService{
		contestRepo: contestRepo,
	}
}

// Create stores a new contest. It always enters the pending state and waits
// for admin approval regardless of what the client sent.
func (s *ContestService) Create(ctx context.Context, contest *models.Contest) error {
	contest.Status = models.ContestStatusPending
	contest.Participants = 0
	contest.Winner = nil
	return s.contestRepo.Create(ctx, contest)
}

// GetByID retrieves a contest by ID
func (s *ContestService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	return s.contestRepo.FindByID(ctx, id)
}

// GetApproved retrieves approved contests, optionally filtered by category
func (s *ContestService) GetApproved(ctx context.Context, category string, page, limit int) ([]*models.Contest, error) {
	return s.contestRepo.FindApproved(ctx, category, page, limit)
}

// GetPopular retrieves the approved contests with the most participants
func (s *ContestService) GetPopular(ctx context.Context, limit int) ([]*models.Contest, error) {
	return s.contestRepo.FindPopular(ctx, limit)
}

// GetByCreator retrieves all contests owned by a creator, any status
func (s *ContestService) GetByCreator(ctx context.Context, email string) ([]*models.Contest, error) {
	return s.contestRepo.FindByCreator(ctx, email)
}

// GetAll retrieves contests of any status (admin view)
func (s *ContestService) GetAll(ctx context.Context, page, limit int) ([]*models.Contest, error) {
	return s.contestRepo.FindAll(ctx, page, limit)
}

// Update replaces a contest's editable fields. Only the owning creator may
// update, and only while the contest is still pending.
func (s *ContestService) Update(ctx context.Context, id primitive.ObjectID, requester string, updated *models.Contest) (*models.Contest, error) {
	contest, err := s.contestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contest.Creator.Email != requester {
		return nil, ErrNotContestOwner
	}
	if contest.Status != models.ContestStatusPending {
		return nil, ErrContestNotEditable
	}

	contest.Name = updated.Name
	contest.Image = updated.Image
	contest.Description = updated.Description
	contest.Price = updated.Price
	contest.Prize = updated.Prize
	contest.Instructions = updated.Instructions
	contest.Category = updated.Category
	contest.Deadline = updated.Deadline

	if err := s.contestRepo.Update(ctx, contest); err != nil {
		return nil, err
	}
	return contest, nil
}

// UpdateStatus sets the lifecycle status (admin action)
func (s *ContestService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return s.contestRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a contest. Admins may delete any contest; a creator may
// delete only their own.
func (s *ContestService) Delete(ctx context.Context, id primitive.ObjectID, requester string, isAdmin bool) error {
	if !isAdmin {
		contest, err := s.contestRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if contest.Creator.Email != requester {
			return ErrNotContestOwner
		}
	}
	return s.contestRepo.Delete(ctx, id)
}
