package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"github.com/battlebox/contest-backend/pkg/checkout"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrProviderLookup wraps failures talking to the payment provider
var ErrProviderLookup = errors.New("payment provider lookup failed")

// Settlement no-op reasons
const (
	ReasonAlreadySettled    = "already settled"
	ReasonContestNotFound   = "contest not found"
	ReasonPaymentIncomplete = "payment incomplete"
)

// SettlementResult is the explicit terminal outcome of a settle call.
// Settled == false carries the reason; there is no silent outcome.
type SettlementResult struct {
	Settled       bool               `json:"settled"`
	Reason        string             `json:"reason,omitempty"`
	TransactionID string             `json:"transactionId,omitempty"`
	OrderID       primitive.ObjectID `json:"orderId,omitempty"`
}

// PaymentService runs the checkout and settlement workflows
type PaymentService struct {
	orderRepo   repositories.OrderRepository
	contestRepo repositories.ContestRepository
	userRepo    repositories.UserRepository
	provider    checkout.Provider
	successURL  string
	cancelURL   string
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	orderRepo repositories.OrderRepository,
	contestRepo repositories.ContestRepository,
	userRepo repositories.UserRepository,
	provider checkout.Provider,
	successURL, cancelURL string,
) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		contestRepo: contestRepo,
		userRepo:    userRepo,
		provider:    provider,
		successURL:  successURL,
		cancelURL:   cancelURL,
	}
}

// CreateCheckout opens a provider session for a contest entry fee. The amount
// always comes from the stored contest document, never from the client.
func (s *PaymentService) CreateCheckout(ctx context.Context, contestID primitive.ObjectID, email string) (string, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return "", err
	}
	if contest.Status != models.ContestStatusApproved {
		return "", errors.New("contest is not open for entry")
	}

	session, err := s.provider.CreateSession(ctx, checkout.CreateSessionParams{
		ContestID:     contest.ID.Hex(),
		CustomerEmail: email,
		Amount:        int64(contest.Price * 100),
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderLookup, err)
	}
	return session.URL, nil
}

// Settle converts a completed checkout session into a durable order plus
// counter updates. The steps run in order with no enclosing transaction:
//
//  1. retrieve the session from the provider
//  2. resolve the contest named in the session metadata
//  3. idempotency check: an order already holding this payment intent
//     means the work is done
//  4. insert the order, then increment contest.participants and
//     user.participated
//
// Step 3 is read-then-insert, so two settles for the same payment intent
// racing past the read can both insert. That window is accepted here; a
// unique index on orders.transactionId with the duplicate-key error mapped
// to ReasonAlreadySettled would close it.
//
// Partial-failure policy is abort-and-report: the first failing step
// surfaces its error and earlier steps are not compensated.
func (s *PaymentService) Settle(ctx context.Context, sessionID string) (*SettlementResult, error) {
	session, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderLookup, err)
	}

	contestIDHex := session.Metadata["contestId"]
	contestID, err := primitive.ObjectIDFromHex(contestIDHex)
	if err != nil {
		return &SettlementResult{Settled: false, Reason: ReasonContestNotFound}, nil
	}

	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Data-integrity guard, not a user-facing error: the session
			// references a contest that no longer exists.
			return &SettlementResult{Settled: false, Reason: ReasonContestNotFound}, nil
		}
		return nil, err
	}

	existing, err := s.orderRepo.FindByTransactionID(ctx, session.PaymentIntent)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return &SettlementResult{
			Settled:       false,
			Reason:        ReasonAlreadySettled,
			TransactionID: existing.TransactionID,
			OrderID:       existing.ID,
		}, nil
	}

	if session.Status != checkout.SessionStatusComplete {
		return &SettlementResult{Settled: false, Reason: ReasonPaymentIncomplete}, nil
	}

	email := session.Metadata["customerEmail"]
	order := &models.Order{
		ContestID:     contest.ID,
		TransactionID: session.PaymentIntent,
		Email:         email,
		Name:          contest.Name,
		Category:      contest.Category,
		Instructions:  contest.Instructions,
		Price:         float64(session.AmountTotal) / 100,
		Prize:         contest.Prize,
		Deadline:      contest.Deadline,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.contestRepo.IncrementParticipants(ctx, contest.ID, 1); err != nil {
		return nil, fmt.Errorf("order %s recorded but participant count not incremented: %w", order.ID.Hex(), err)
	}
	if err := s.userRepo.IncrementParticipated(ctx, email, 1); err != nil {
		return nil, fmt.Errorf("order %s recorded but user counter not incremented: %w", order.ID.Hex(), err)
	}

	return &SettlementResult{
		Settled:       true,
		TransactionID: order.TransactionID,
		OrderID:       order.ID,
	}, nil
}

// OrdersByEmail lists a customer's settled orders
func (s *PaymentService) OrdersByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return s.orderRepo.FindByEmail(ctx, email)
}
