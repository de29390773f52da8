package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/internal/service/auth"
	"portfolio-admin/pkg/trace"
	"portfolio-admin/pkg/util"
)

const testSecret = "middleware-test-secret"

type stubUserStore struct{}

func (stubUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, errors.New("no rows")
}

func (stubUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, errors.New("no rows")
}

type memDenylist struct {
	revoked map[string]bool
}

func (m *memDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.revoked[tokenID] = true
	return nil
}

func (m *memDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	return m.revoked[tokenID]
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memDenylist) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	denylist := &memDenylist{revoked: map[string]bool{}}
	authSvc := auth.NewService(stubUserStore{}, denylist, testSecret, zap.NewNop())

	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, authSvc), func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r, denylist
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	token, err := util.GenerateJWT(9, "admin@example.com", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":9`)
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	r, denylist := newAuthTestRouter(t)

	token, err := util.GenerateJWT(9, "admin@example.com", testSecret)
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, testSecret)
	require.NoError(t, err)
	denylist.revoked[claims.TokenID] = true

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	token, err := util.GenerateJWT(9, "admin@example.com", "some-other-secret")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = trace.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	// Incoming trace ID is propagated.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(trace.HeaderName(), "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(trace.HeaderName()))

	// Absent trace ID gets minted.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEmpty(t, w.Header().Get(trace.HeaderName()))
}
