package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the slice of the user repository the session gate needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// TokenDenylist revokes individual tokens (by jti) until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type Service struct {
	userRepo  UserStore
	denylist  TokenDenylist
	jwtSecret string
	logger    *zap.Logger
}

func NewService(userRepo UserStore, denylist TokenDenylist, jwtSecret string, logger *zap.Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		denylist:  denylist,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Login checks credentials and returns a signed session token. Bad
// email and bad password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, u.Email, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Login successful", zap.Int64("user_id", u.ID))
	return token, u, nil
}

// Logout revokes the presented token until its natural expiry. The next
// request carrying it is rejected by the auth middleware.
func (s *Service) Logout(ctx context.Context, claims *util.Claims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		// Token already expired on its own; nothing to revoke.
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		s.logger.Error("Failed to revoke token",
			zap.Int64("user_id", claims.UserID),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("Logout successful", zap.Int64("user_id", claims.UserID))
	return nil
}

// CurrentUser mirrors the session identity for GET /me.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// IsRevoked reports whether a token ID has been logged out.
func (s *Service) IsRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}
	return s.denylist.IsRevoked(ctx, tokenID)
}
