package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/testutil"
	"github.com/battlebox/contest-backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T, tokens *token.Service, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": EmailFromContext(c)})
	})
	router.GET("/guarded", handlers...)
	return router
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	router := newGuardedRouter(t, token.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newGuardedRouter(t, token.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareBadSignature(t *testing.T) {
	router := newGuardedRouter(t, token.NewService("test-secret", time.Hour))

	forged, err := token.NewService("other-secret", time.Hour).Mint("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewarePassesEmail(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	router := newGuardedRouter(t, tokens)

	signed, err := tokens.Mint("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestRequireAdminRejectsParticipant(t *testing.T) {
	users := testutil.NewUserStore()
	users.Seed(&models.User{Email: "a@x.com", Role: models.RoleParticipant})
	tokens := token.NewService("test-secret", time.Hour)
	router := newGuardedRouter(t, tokens, RequireAdmin(users))

	signed, err := tokens.Mint("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The refusal names the role the caller actually holds
	assert.Contains(t, w.Body.String(), `"role":"participant"`)
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	router := newGuardedRouter(t, tokens, RequireAdmin(testutil.NewUserStore()))

	signed, err := tokens.Mint("ghost@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleUsesStoredRole(t *testing.T) {
	users := testutil.NewUserStore()
	users.Seed(&models.User{Email: "b@y.com", Role: models.RoleParticipant})
	tokens := token.NewService("test-secret", time.Hour)
	router := newGuardedRouter(t, tokens, RequireCreator(users))

	signed, err := tokens.Mint("b@y.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Promotion in the directory takes effect on the next request, with no
	// token reissue.
	require.NoError(t, users.UpdateRoleByEmail(req.Context(), "b@y.com", models.RoleCreator))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
