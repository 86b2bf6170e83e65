package services

import (
	"context"
	"errors"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WinnerService handles winner declaration
type WinnerService struct {
	winnerRepo  repositories.WinnerRepository
	contestRepo repositories.ContestRepository
	userRepo    repositories.UserRepository
}

// NewWinnerService creates a new WinnerService
func NewWinnerService(
	winnerRepo repositories.WinnerRepository,
	contestRepo repositories.ContestRepository,
	userRepo repositories.UserRepository,
) *WinnerService {
	return &WinnerService{
		winnerRepo:  winnerRepo,
		contestRepo: contestRepo,
		userRepo:    userRepo,
	}
}

// Declare records the winner of a contest. Only the contest's creator may
// declare, and at most one winner may exist per contest: a second declaration
// is rejected with ErrDuplicateWinner and leaves the first winner and all
// counters unchanged.
//
// The three writes (winner insert, contest.winner set, user.win increment)
// run in order without a transaction; the first failure aborts and is
// reported, earlier writes stay.
func (s *WinnerService) Declare(ctx context.Context, winner *models.Winner, requester string) error {
	contest, err := s.contestRepo.FindByID(ctx, winner.ContestID)
	if err != nil {
		return err
	}
	if contest.Creator.Email != requester {
		return ErrNotContestOwner
	}

	existing, err := s.winnerRepo.FindByContest(ctx, winner.ContestID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if existing != nil {
		return ErrDuplicateWinner
	}

	winner.ContestName = contest.Name
	winner.Prize = contest.Prize
	if err := s.winnerRepo.Create(ctx, winner); err != nil {
		return err
	}

	summary := &models.ContestWinner{
		Name:  winner.Name,
		Image: winner.Image,
		Prize: winner.Prize,
	}
	if err := s.contestRepo.SetWinner(ctx, contest.ID, summary); err != nil {
		return err
	}
	return s.userRepo.IncrementWins(ctx, winner.Email, 1)
}

// GetByContest finds the winner declared for a contest
func (s *WinnerService) GetByContest(ctx context.Context, contestID primitive.ObjectID) (*models.Winner, error) {
	return s.winnerRepo.FindByContest(ctx, contestID)
}

// Recent retrieves the most recently declared winners
func (s *WinnerService) Recent(ctx context.Context, limit int) ([]*models.Winner, error) {
	return s.winnerRepo.FindRecent(ctx, limit)
}
