package services

import (
	"context"
	"testing"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/testutil"
	"github.com/battlebox/contest-backend/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	users := testutil.NewUserStore()
	tokens := token.NewService("test-secret", time.Hour)
	service := NewAuthService(users, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	users.Seed(&models.User{Email: "admin@x.com", Role: models.RoleAdmin, Password: string(hash)})

	signed, err := service.Login(context.Background(), "admin@x.com", "hunter2")
	require.NoError(t, err)

	email, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", email)
}

func TestLoginWrongPassword(t *testing.T) {
	users := testutil.NewUserStore()
	service := NewAuthService(users, token.NewService("test-secret", time.Hour))

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	users.Seed(&models.User{Email: "admin@x.com", Password: string(hash)})

	_, err := service.Login(context.Background(), "admin@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFederatedAccountRejected(t *testing.T) {
	users := testutil.NewUserStore()
	service := NewAuthService(users, token.NewService("test-secret", time.Hour))

	// Federated accounts carry no password hash
	users.Seed(&models.User{Email: "a@x.com", Role: models.RoleParticipant})

	_, err := service.Login(context.Background(), "a@x.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := NewAuthService(testutil.NewUserStore(), token.NewService("test-secret", time.Hour))

	_, err := service.Login(context.Background(), "ghost@x.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
