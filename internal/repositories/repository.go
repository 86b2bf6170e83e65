package repositories

import (
	"context"

	"github.com/battlebox/contest-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.User, error)
	TouchLastLogin(ctx context.Context, email string) error
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
	UpdateRoleByEmail(ctx context.Context, email string, role string) error
	IncrementParticipated(ctx context.Context, email string, delta int) error
	IncrementWins(ctx context.Context, email string, delta int) error
	Count(ctx context.Context) (int64, error)
}

// ContestRepository defines the interface for contest store operations
type ContestRepository interface {
	Create(ctx context.Context, contest *models.Contest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)
	FindApproved(ctx context.Context, category string, page, limit int) ([]*models.Contest, error)
	FindPopular(ctx context.Context, limit int) ([]*models.Contest, error)
	FindByCreator(ctx context.Context, email string) ([]*models.Contest, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Contest, error)
	Update(ctx context.Context, contest *models.Contest) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetWinner(ctx context.Context, id primitive.ObjectID, winner *models.ContestWinner) error
	IncrementParticipants(ctx context.Context, id primitive.ObjectID, delta int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for the settled-payment ledger
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Order, error)
}

// SubmissionRepository defines the interface for task submissions
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error)
	FindByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Submission, error)
}

// WinnerRepository defines the interface for declared winners
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindByContest(ctx context.Context, contestID primitive.ObjectID) (*models.Winner, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Winner, error)
}

// CreatorRequestRepository defines the interface for creator-role requests
type CreatorRequestRepository interface {
	Create(ctx context.Context, request *models.CreatorRequest) error
	FindByEmail(ctx context.Context, email string) (*models.CreatorRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CreatorRequest, error)
	FindAll(ctx context.Context) ([]*models.CreatorRequest, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReviewRepository defines the interface for platform reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindRecent(ctx context.Context, limit int) ([]*models.Review, error)
}
