package util

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, "admin@example.com", "secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt, time.Minute)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "admin@example.com", "secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	a, err := GenerateJWT(1, "a@example.com", "secret")
	require.NoError(t, err)
	b, err := GenerateJWT(1, "a@example.com", "secret")
	require.NoError(t, err)

	ca, err := ParseJWT(a, "secret")
	require.NoError(t, err)
	cb, err := ParseJWT(b, "secret")
	require.NoError(t, err)

	assert.NotEqual(t, ca.TokenID, cb.TokenID)
}

func TestExtractToken(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, ExtractToken(req))
}
