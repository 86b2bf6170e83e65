package services

import (
	"context"
	"errors"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService handles the user directory
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Upsert is the create-or-touch applied on every sign-in. The first sign-in
// inserts the principal with the participant role and zeroed counters; later
// sign-ins only refresh last_login, leaving role and counters alone.
// Returns true when a new record was created.
func (s *UserService) Upsert(ctx context.Context, user *models.User) (bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	if existing != nil {
		if err := s.userRepo.TouchLastLogin(ctx, user.Email); err != nil {
			return false, err
		}
		*user = *existing
		user.LastLogin = time.Now()
		return false, nil
	}

	user.Role = models.RoleParticipant
	user.Participated = 0
	user.Win = 0
	return true, s.userRepo.Create(ctx, user)
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// GetRole returns the stored role for a principal
func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// GetAll retrieves users with pagination
func (s *UserService) GetAll(ctx context.Context, page, limit int) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx, page, limit)
}

// UpdateRole sets an arbitrary role on a user (admin action)
func (s *UserService) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	return s.userRepo.UpdateRole(ctx, id, role)
}

// Count gets the total number of users
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
