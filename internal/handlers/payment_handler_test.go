package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/services"
	"github.com/battlebox/contest-backend/internal/testutil"
	"github.com/battlebox/contest-backend/pkg/checkout"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type settleHarness struct {
	router   *gin.Engine
	provider *testutil.ScriptedProvider
	contest  *models.Contest
}

func newSettleHarness(t *testing.T) *settleHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orders := testutil.NewOrderStore()
	contests := testutil.NewContestStore()
	users := testutil.NewUserStore()
	provider := testutil.NewScriptedProvider()

	contest := &models.Contest{
		ID:     primitive.NewObjectID(),
		Name:   "Logo Design Battle",
		Price:  50,
		Status: models.ContestStatusApproved,
	}
	contests.Seed(contest)
	users.Seed(&models.User{Email: "a@x.com", Role: models.RoleParticipant})

	service := services.NewPaymentService(orders, contests, users, provider, "", "")
	handler := NewPaymentHandler(service)

	router := gin.New()
	router.POST("/payments/settle", handler.Settle)

	return &settleHarness{router: router, provider: provider, contest: contest}
}

func (h *settleHarness) settle(body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/settle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.router.ServeHTTP(w, req)
	return w
}

func TestSettleEndpoint(t *testing.T) {
	h := newSettleHarness(t)
	h.provider.AddSession(&checkout.Session{
		ID:            "cs_1",
		Status:        checkout.SessionStatusComplete,
		PaymentIntent: "pi_1",
		AmountTotal:   5000,
		Metadata: map[string]string{
			"contestId":     h.contest.ID.Hex(),
			"customerEmail": "a@x.com",
		},
	})

	w := h.settle(`{"sessionId":"cs_1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"settled":true`)

	// A replay still gets a 200 with an explicit body saying why nothing
	// happened.
	w = h.settle(`{"sessionId":"cs_1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"settled":false`)
	assert.Contains(t, w.Body.String(), services.ReasonAlreadySettled)
}

func TestSettleEndpointMissingSessionID(t *testing.T) {
	h := newSettleHarness(t)

	w := h.settle(`{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettleEndpointProviderDown(t *testing.T) {
	h := newSettleHarness(t)
	h.provider.Err = assert.AnError

	w := h.settle(`{"sessionId":"cs_1"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
