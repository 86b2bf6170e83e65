package services

import (
	"context"
	"testing"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCreatesParticipantOnFirstSignIn(t *testing.T) {
	users := testutil.NewUserStore()
	service := NewUserService(users)

	user := &models.User{Name: "Bobby", Email: "b@y.com", Role: "admin"} // client-sent role is ignored
	created, err := service.Upsert(context.Background(), user)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, models.RoleParticipant, user.Role)
	assert.Equal(t, 0, user.Participated)
	assert.Equal(t, 0, user.Win)

	stored, err := users.FindByEmail(context.Background(), "b@y.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, stored.Role)
}

func TestUpsertTwiceKeepsOneRecord(t *testing.T) {
	users := testutil.NewUserStore()
	service := NewUserService(users)

	first := &models.User{Name: "Bobby", Email: "b@y.com"}
	created, err := service.Upsert(context.Background(), first)
	require.NoError(t, err)
	require.True(t, created)

	// Promote and participate between sign-ins; the second upsert must not
	// reset either.
	require.NoError(t, users.UpdateRoleByEmail(context.Background(), "b@y.com", models.RoleCreator))
	require.NoError(t, users.IncrementParticipated(context.Background(), "b@y.com", 3))
	firstLogin := first.LastLogin

	time.Sleep(5 * time.Millisecond)

	second := &models.User{Name: "Bobby", Email: "b@y.com"}
	created, err = service.Upsert(context.Background(), second)
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, models.RoleCreator, second.Role)
	assert.Equal(t, 3, second.Participated)
	assert.True(t, second.LastLogin.After(firstLogin), "last_login should advance")

	count, err := users.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
