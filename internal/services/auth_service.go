package services

import (
	"context"

	"github.com/battlebox/contest-backend/internal/repositories"
	"github.com/battlebox/contest-backend/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles ops logins. Regular participants authenticate through
// the federated identity provider; this path exists for admin accounts
// provisioned with a password hash so the platform can be operated without
// the external IdP.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *token.Service
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies an email/password pair and returns a signed bearer token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if user.Password == "" {
		// Federated account, no local password
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Mint(user.Email)
}
