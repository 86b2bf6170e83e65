// Package testutil provides in-memory implementations of the repository
// interfaces and a scripted checkout provider for tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is an in-memory repositories.UserRepository
type UserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

var _ repositories.UserRepository = (*UserStore)(nil)

// NewUserStore creates an empty UserStore
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

// Seed inserts a user directly, bypassing Create bookkeeping
func (s *UserStore) Seed(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.Email] = user
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.LastLogin = time.Now()
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *user
	return &cp, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *UserStore) FindAll(ctx context.Context, page, limit int) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		cp := *user
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return paginate(users, page, limit), nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.LastLogin = time.Now()
	return nil
}

func (s *UserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			user.Role = role
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *UserStore) UpdateRoleByEmail(ctx context.Context, email string, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Role = role
	return nil
}

func (s *UserStore) IncrementParticipated(ctx context.Context, email string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Participated += delta
	return nil
}

func (s *UserStore) IncrementWins(ctx context.Context, email string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Win += delta
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

// ContestStore is an in-memory repositories.ContestRepository
type ContestStore struct {
	mu       sync.Mutex
	contests map[primitive.ObjectID]*models.Contest
}

var _ repositories.ContestRepository = (*ContestStore)(nil)

// NewContestStore creates an empty ContestStore
func NewContestStore() *ContestStore {
	return &ContestStore{contests: make(map[primitive.ObjectID]*models.Contest)}
}

// Seed inserts a contest directly
func (s *ContestStore) Seed(contest *models.Contest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if contest.ID.IsZero() {
		contest.ID = primitive.NewObjectID()
	}
	s.contests[contest.ID] = contest
}

func (s *ContestStore) Create(ctx context.Context, contest *models.Contest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest.ID = primitive.NewObjectID()
	contest.CreatedAt = time.Now()
	contest.UpdatedAt = time.Now()
	cp := *contest
	s.contests[contest.ID] = &cp
	return nil
}

func (s *ContestStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest, ok := s.contests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *contest
	return &cp, nil
}

func (s *ContestStore) FindApproved(ctx context.Context, category string, page, limit int) ([]*models.Contest, error) {
	return s.filter(func(c *models.Contest) bool {
		return c.Status == models.ContestStatusApproved && (category == "" || c.Category == category)
	}, page, limit), nil
}

func (s *ContestStore) FindPopular(ctx context.Context, limit int) ([]*models.Contest, error) {
	contests := s.filter(func(c *models.Contest) bool {
		return c.Status == models.ContestStatusApproved
	}, 1, 0)
	sort.Slice(contests, func(i, j int) bool { return contests[i].Participants > contests[j].Participants })
	if limit > 0 && len(contests) > limit {
		contests = contests[:limit]
	}
	return contests, nil
}

func (s *ContestStore) FindByCreator(ctx context.Context, email string) ([]*models.Contest, error) {
	return s.filter(func(c *models.Contest) bool { return c.Creator.Email == email }, 1, 0), nil
}

func (s *ContestStore) FindAll(ctx context.Context, page, limit int) ([]*models.Contest, error) {
	return s.filter(func(c *models.Contest) bool { return true }, page, limit), nil
}

func (s *ContestStore) Update(ctx context.Context, contest *models.Contest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contests[contest.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	contest.UpdatedAt = time.Now()
	cp := *contest
	s.contests[contest.ID] = &cp
	return nil
}

func (s *ContestStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest, ok := s.contests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	contest.Status = status
	return nil
}

func (s *ContestStore) SetWinner(ctx context.Context, id primitive.ObjectID, winner *models.ContestWinner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest, ok := s.contests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	contest.Winner = winner
	return nil
}

func (s *ContestStore) IncrementParticipants(ctx context.Context, id primitive.ObjectID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contest, ok := s.contests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	contest.Participants += delta
	return nil
}

func (s *ContestStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contests, id)
	return nil
}

func (s *ContestStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.contests)), nil
}

func (s *ContestStore) filter(keep func(*models.Contest) bool, page, limit int) []*models.Contest {
	s.mu.Lock()
	defer s.mu.Unlock()
	contests := make([]*models.Contest, 0)
	for _, contest := range s.contests {
		if keep(contest) {
			cp := *contest
			contests = append(contests, &cp)
		}
	}
	sort.Slice(contests, func(i, j int) bool { return contests[i].ID.Hex() < contests[j].ID.Hex() })
	return paginate(contests, page, limit)
}

// OrderStore is an in-memory repositories.OrderRepository
type OrderStore struct {
	mu     sync.Mutex
	orders []*models.Order
}

var _ repositories.OrderRepository = (*OrderStore)(nil)

// NewOrderStore creates an empty OrderStore
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	cp := *order
	s.orders = append(s.orders, &cp)
	return nil
}

func (s *OrderStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.TransactionID == transactionID {
			cp := *order
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *OrderStore) FindByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]*models.Order, 0)
	for _, order := range s.orders {
		if order.Email == email {
			cp := *order
			orders = append(orders, &cp)
		}
	}
	return orders, nil
}

// Len returns the number of stored orders
func (s *OrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// SubmissionStore is an in-memory repositories.SubmissionRepository
type SubmissionStore struct {
	mu          sync.Mutex
	submissions []*models.Submission
}

var _ repositories.SubmissionRepository = (*SubmissionStore)(nil)

// NewSubmissionStore creates an empty SubmissionStore
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{}
}

func (s *SubmissionStore) Create(ctx context.Context, submission *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	submission.ID = primitive.NewObjectID()
	submission.SubmittedAt = time.Now()
	cp := *submission
	s.submissions = append(s.submissions, &cp)
	return nil
}

func (s *SubmissionStore) FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, submission := range s.submissions {
		if submission.ContestID == contestID && submission.Email == email {
			cp := *submission
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *SubmissionStore) FindByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	submissions := make([]*models.Submission, 0)
	for _, submission := range s.submissions {
		if submission.ContestID == contestID {
			cp := *submission
			submissions = append(submissions, &cp)
		}
	}
	return submissions, nil
}

func (s *SubmissionStore) FindByEmail(ctx context.Context, email string) ([]*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	submissions := make([]*models.Submission, 0)
	for _, submission := range s.submissions {
		if submission.Email == email {
			cp := *submission
			submissions = append(submissions, &cp)
		}
	}
	return submissions, nil
}

// Len returns the number of stored submissions
func (s *SubmissionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

// WinnerStore is an in-memory repositories.WinnerRepository
type WinnerStore struct {
	mu      sync.Mutex
	winners []*models.Winner
}

var _ repositories.WinnerRepository = (*WinnerStore)(nil)

// NewWinnerStore creates an empty WinnerStore
func NewWinnerStore() *WinnerStore {
	return &WinnerStore{}
}

func (s *WinnerStore) Create(ctx context.Context, winner *models.Winner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	winner.ID = primitive.NewObjectID()
	winner.DeclaredAt = time.Now()
	cp := *winner
	s.winners = append(s.winners, &cp)
	return nil
}

func (s *WinnerStore) FindByContest(ctx context.Context, contestID primitive.ObjectID) (*models.Winner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, winner := range s.winners {
		if winner.ContestID == contestID {
			cp := *winner
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *WinnerStore) FindRecent(ctx context.Context, limit int) ([]*models.Winner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	winners := make([]*models.Winner, 0, len(s.winners))
	for _, winner := range s.winners {
		cp := *winner
		winners = append(winners, &cp)
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].DeclaredAt.After(winners[j].DeclaredAt) })
	if limit > 0 && len(winners) > limit {
		winners = winners[:limit]
	}
	return winners, nil
}

// Len returns the number of stored winners
func (s *WinnerStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.winners)
}

// CreatorRequestStore is an in-memory repositories.CreatorRequestRepository
type CreatorRequestStore struct {
	mu       sync.Mutex
	requests []*models.CreatorRequest
}

var _ repositories.CreatorRequestRepository = (*CreatorRequestStore)(nil)

// NewCreatorRequestStore creates an empty CreatorRequestStore
func NewCreatorRequestStore() *CreatorRequestStore {
	return &CreatorRequestStore{}
}

func (s *CreatorRequestStore) Create(ctx context.Context, request *models.CreatorRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	request.ID = primitive.NewObjectID()
	request.RequestedAt = time.Now()
	cp := *request
	s.requests = append(s.requests, &cp)
	return nil
}

func (s *CreatorRequestStore) FindByEmail(ctx context.Context, email string) (*models.CreatorRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.requests {
		if request.Email == email {
			cp := *request
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *CreatorRequestStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CreatorRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.requests {
		if request.ID == id {
			cp := *request
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *CreatorRequestStore) FindAll(ctx context.Context) ([]*models.CreatorRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := make([]*models.CreatorRequest, 0, len(s.requests))
	for _, request := range s.requests {
		cp := *request
		requests = append(requests, &cp)
	}
	return requests, nil
}

func (s *CreatorRequestStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, request := range s.requests {
		if request.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

// ReviewStore is an in-memory repositories.ReviewRepository
type ReviewStore struct {
	mu      sync.Mutex
	reviews []*models.Review
}

var _ repositories.ReviewRepository = (*ReviewStore)(nil)

// NewReviewStore creates an empty ReviewStore
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

func (s *ReviewStore) Create(ctx context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	cp := *review
	s.reviews = append(s.reviews, &cp)
	return nil
}

func (s *ReviewStore) FindRecent(ctx context.Context, limit int) ([]*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews := make([]*models.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		cp := *review
		reviews = append(reviews, &cp)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func paginate[T any](items []*T, page, limit int) []*T {
	if limit <= 0 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []*T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
