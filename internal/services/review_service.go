package services

import (
	"context"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
)

// ReviewService handles platform reviews
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
	}
}

// Add stores a review
func (s *ReviewService) Add(ctx context.Context, review *models.Review) error {
	return s.reviewRepo.Create(ctx, review)
}

// Recent retrieves the newest reviews
func (s *ReviewService) Recent(ctx context.Context, limit int) ([]*models.Review, error) {
	return s.reviewRepo.FindRecent(ctx, limit)
}
