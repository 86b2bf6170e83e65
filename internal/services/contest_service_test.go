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

func seedContest(store *testutil.ContestStore, status string) *models.Contest {
	contest := &models.Contest{
		ID:      primitive.NewObjectID(),
		Name:    "Photo Duel",
		Price:   25,
		Status:  status,
		Creator: models.ContestCreator{Name: "Carol", Email: "creator@x.com"},
	}
	store.Seed(contest)
	return contest
}

func TestCreateContestEntersPending(t *testing.T) {
	contests := testutil.NewContestStore()
	service := NewContestService(contests)

	contest := &models.Contest{
		Name:         "Photo Duel",
		Status:       models.ContestStatusApproved, // client cannot self-approve
		Participants: 99,
		Winner:       &models.ContestWinner{Name: "nope"},
	}
	require.NoError(t, service.Create(context.Background(), contest))

	assert.Equal(t, models.ContestStatusPending, contest.Status)
	assert.Equal(t, 0, contest.Participants)
	assert.Nil(t, contest.Winner)
}

func TestUpdateContestOwnerOnly(t *testing.T) {
	contests := testutil.NewContestStore()
	service := NewContestService(contests)
	contest := seedContest(contests, models.ContestStatusPending)

	_, err := service.Update(context.Background(), contest.ID, "intruder@x.com", &models.Contest{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotContestOwner)

	updated, err := service.Update(context.Background(), contest.ID, "creator@x.com", &models.Contest{Name: "Photo Duel II", Price: 30})
	require.NoError(t, err)
	assert.Equal(t, "Photo Duel II", updated.Name)
	assert.Equal(t, 30.0, updated.Price)
}

func TestUpdateApprovedContestRejected(t *testing.T) {
	contests := testutil.NewContestStore()
	service := NewContestService(contests)
	contest := seedContest(contests, models.ContestStatusApproved)

	_, err := service.Update(context.Background(), contest.ID, "creator@x.com", &models.Contest{Name: "Too Late"})
	assert.ErrorIs(t, err, ErrContestNotEditable)

	stored, _ := contests.FindByID(context.Background(), contest.ID)
	assert.Equal(t, "Photo Duel", stored.Name)
}

func TestDeleteContest(t *testing.T) {
	contests := testutil.NewContestStore()
	service := NewContestService(contests)
	contest := seedContest(contests, models.ContestStatusApproved)

	err := service.Delete(context.Background(), contest.ID, "intruder@x.com", false)
	assert.ErrorIs(t, err, ErrNotContestOwner)

	// Admins bypass the ownership check
	require.NoError(t, service.Delete(context.Background(), contest.ID, "admin@x.com", true))

	_, err = contests.FindByID(context.Background(), contest.ID)
	assert.Error(t, err)
}
