package services

import (
	"context"
	"errors"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreatorRequestService handles creator-role requests and their approval
type CreatorRequestService struct {
	requestRepo repositories.CreatorRequestRepository
	userRepo    repositories.UserRepository
}

// NewCreatorRequestService creates a new CreatorRequestService
func NewCreatorRequestService(
	requestRepo repositories.CreatorRequestRepository,
	userRepo repositories.UserRepository,
) *CreatorRequestService {
	return &CreatorRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// Submit files a creator-role request. At most one pending request per
// email; a second attempt is rejected with ErrDuplicateCreatorRequest.
func (s *CreatorRequestService) Submit(ctx context.Context, request *models.CreatorRequest) error {
	existing, err := s.requestRepo.FindByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if existing != nil {
		return ErrDuplicateCreatorRequest
	}
	return s.requestRepo.Create(ctx, request)
}

// List retrieves the pending request queue (admin view)
func (s *CreatorRequestService) List(ctx context.Context) ([]*models.CreatorRequest, error) {
	return s.requestRepo.FindAll(ctx)
}

// Approve upgrades the requester to the creator role and removes the
// request. Two steps, not atomic: if the delete fails the principal is
// already upgraded and the request is orphaned. Re-running Approve is
// harmless — the role set is idempotent and the delete is retried.
func (s *CreatorRequestService) Approve(ctx context.Context, requestID primitive.ObjectID) (*models.CreatorRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRoleByEmail(ctx, request.Email, models.RoleCreator); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return nil, err
	}
	return request, nil
}
