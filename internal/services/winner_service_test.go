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

type winnerFixture struct {
	winners  *testutil.WinnerStore
	contests *testutil.ContestStore
	users    *testutil.UserStore
	service  *WinnerService
	contest  *models.Contest
}

func newWinnerFixture(t *testing.T) *winnerFixture {
	t.Helper()

	winners := testutil.NewWinnerStore()
	contests := testutil.NewContestStore()
	users := testutil.NewUserStore()

	contest := &models.Contest{
		ID:      primitive.NewObjectID(),
		Name:    "Photo Duel",
		Prize:   "$250",
		Status:  models.ContestStatusApproved,
		Creator: models.ContestCreator{Name: "Carol", Email: "creator@x.com"},
	}
	contests.Seed(contest)
	users.Seed(&models.User{Name: "Aisha", Email: "a@x.com", Role: models.RoleParticipant})

	return &winnerFixture{
		winners:  winners,
		contests: contests,
		users:    users,
		service:  NewWinnerService(winners, contests, users),
		contest:  contest,
	}
}

func TestDeclareWinner(t *testing.T) {
	f := newWinnerFixture(t)

	winner := &models.Winner{ContestID: f.contest.ID, Email: "a@x.com", Name: "Aisha"}
	require.NoError(t, f.service.Declare(context.Background(), winner, "creator@x.com"))

	assert.Equal(t, "Photo Duel", winner.ContestName)
	assert.Equal(t, "$250", winner.Prize)

	contest, _ := f.contests.FindByID(context.Background(), f.contest.ID)
	require.NotNil(t, contest.Winner)
	assert.Equal(t, "Aisha", contest.Winner.Name)
	assert.Equal(t, "$250", contest.Winner.Prize)

	user, _ := f.users.FindByEmail(context.Background(), "a@x.com")
	assert.Equal(t, 1, user.Win)
}

func TestDeclareSecondWinnerRejected(t *testing.T) {
	f := newWinnerFixture(t)

	first := &models.Winner{ContestID: f.contest.ID, Email: "a@x.com", Name: "Aisha"}
	require.NoError(t, f.service.Declare(context.Background(), first, "creator@x.com"))

	f.users.Seed(&models.User{Name: "Dan", Email: "d@x.com", Role: models.RoleParticipant})
	second := &models.Winner{ContestID: f.contest.ID, Email: "d@x.com", Name: "Dan"}
	err := f.service.Declare(context.Background(), second, "creator@x.com")
	assert.ErrorIs(t, err, ErrDuplicateWinner)

	// First winner and all counters are untouched
	assert.Equal(t, 1, f.winners.Len())
	stored, _ := f.winners.FindByContest(context.Background(), f.contest.ID)
	assert.Equal(t, "a@x.com", stored.Email)

	contest, _ := f.contests.FindByID(context.Background(), f.contest.ID)
	assert.Equal(t, "Aisha", contest.Winner.Name)

	dan, _ := f.users.FindByEmail(context.Background(), "d@x.com")
	assert.Equal(t, 0, dan.Win)
}

func TestDeclareByNonOwnerRejected(t *testing.T) {
	f := newWinnerFixture(t)

	winner := &models.Winner{ContestID: f.contest.ID, Email: "a@x.com", Name: "Aisha"}
	err := f.service.Declare(context.Background(), winner, "someone-else@x.com")
	assert.ErrorIs(t, err, ErrNotContestOwner)
	assert.Equal(t, 0, f.winners.Len())
}
