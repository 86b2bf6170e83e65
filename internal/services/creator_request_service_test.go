package services

import (
	"context"
	"testing"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatorRequestDuplicateRejected(t *testing.T) {
	requests := testutil.NewCreatorRequestStore()
	users := testutil.NewUserStore()
	service := NewCreatorRequestService(requests, users)

	require.NoError(t, service.Submit(context.Background(), &models.CreatorRequest{Email: "b@y.com", Name: "Bobby"}))

	err := service.Submit(context.Background(), &models.CreatorRequest{Email: "b@y.com", Name: "Bobby"})
	assert.ErrorIs(t, err, ErrDuplicateCreatorRequest)

	pending, _ := service.List(context.Background())
	assert.Len(t, pending, 1)
}

func TestApproveUpgradesRoleAndRemovesRequest(t *testing.T) {
	requests := testutil.NewCreatorRequestStore()
	users := testutil.NewUserStore()
	service := NewCreatorRequestService(requests, users)

	users.Seed(&models.User{Name: "Bobby", Email: "b@y.com", Role: models.RoleParticipant})

	request := &models.CreatorRequest{Email: "b@y.com", Name: "Bobby"}
	require.NoError(t, service.Submit(context.Background(), request))

	approved, err := service.Approve(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@y.com", approved.Email)

	user, err := users.FindByEmail(context.Background(), "b@y.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCreator, user.Role)

	pending, _ := service.List(context.Background())
	assert.Empty(t, pending)
}

func TestApproveUnknownRequest(t *testing.T) {
	service := NewCreatorRequestService(testutil.NewCreatorRequestStore(), testutil.NewUserStore())

	_, err := service.Approve(context.Background(), primitive.NewObjectID())
	assert.Error(t, err)
}
