package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "revoked:jti:"

// RedisList is a Redis-backed token revocation list shared by all instances.
type RedisList struct {
	client redis.Cmdable
}

// NewRedisList constructs a revocation list over client.
func NewRedisList(client redis.Cmdable) *RedisList {
	return &RedisList{client: client}
}

// Revoke records jti as revoked for ttl. Entries vanish once the token
// would have expired anyway, so non-positive ttl is a no-op.
func (l *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether jti is on the list.
func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := l.client.Get(ctx, revokedTokenKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
