package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisDenylist stores revoked token IDs in Redis with a TTL matching
// the token's remaining lifetime, so entries clean themselves up.
type RedisDenylist struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisDenylist(rdb *redis.Client, logger *zap.Logger) *RedisDenylist {
	return &RedisDenylist{rdb: rdb, logger: logger}
}

func denylistKey(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.rdb.Set(ctx, denylistKey(tokenID), 1, ttl).Err()
}

// IsRevoked fails open: when Redis is unavailable the token is treated
// as live rather than locking the admin out of the panel.
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	n, err := d.rdb.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		d.logger.Warn("Redis denylist check failed, treating token as live", zap.Error(err))
		return false
	}
	return n > 0
}
