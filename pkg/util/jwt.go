package util

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 24 * time.Hour

// Claims carries the session identity extracted from a token.
type Claims struct {
	UserID    int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// GenerateJWT creates a session token for a given user. The jti claim
// identifies the token so logout can revoke it individually.
func GenerateJWT(userID int64, email, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"jti":     newTokenID(),
		"exp":     now.Add(TokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token and extracts the session claims.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	userIDFloat, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	c := &Claims{UserID: int64(userIDFloat)}
	if email, ok := mapClaims["email"].(string); ok {
		c.Email = email
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		c.TokenID = jti
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return c, nil
}

// ExtractToken pulls a bearer token out of the Authorization header.
func ExtractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

func newTokenID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
