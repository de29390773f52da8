package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/util"
)

const testSecret = "test-secret"

type fakeUserStore struct {
	user *model.User
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, errors.New("no rows")
	}
	return f.user, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, errors.New("no rows")
	}
	return f.user, nil
}

type fakeDenylist struct {
	revoked map[string]time.Duration
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]time.Duration{}}
}

func (f *fakeDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	_, ok := f.revoked[tokenID]
	return ok
}

func newTestService(t *testing.T) (*Service, *fakeDenylist) {
	t.Helper()
	hash, err := util.HashPassword("correct horse")
	require.NoError(t, err)

	store := &fakeUserStore{user: &model.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: hash,
	}}
	denylist := newFakeDenylist()
	return NewService(store, denylist, testSecret, zap.NewNop()), denylist
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestService(t)

	token, u, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(1), u.ID)

	claims, err := util.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, denylist := newTestService(t)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, testSecret)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))

	assert.True(t, svc.IsRevoked(context.Background(), claims.TokenID))
	ttl := denylist.revoked[claims.TokenID]
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, util.TokenTTL)
}

func TestLogoutExpiredTokenIsNoop(t *testing.T) {
	svc, denylist := newTestService(t)

	claims := &util.Claims{
		UserID:    1,
		TokenID:   "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.Empty(t, denylist.revoked)
}

func TestIsRevokedEmptyTokenID(t *testing.T) {
	svc, _ := newTestService(t)
	assert.False(t, svc.IsRevoked(context.Background(), ""))
}
