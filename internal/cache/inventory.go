package cache

import (
	"context"
	"fmt"
	"time"

	"forumapp/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	BlacklistKeyPrefix = "blacklist:%s"
	RateLimitKeyPrefix = "rl:%s:%s"
)

// BlacklistTTL bounds how long a revoked token ID is retained. It should be at
// least as long as the token lifetime.
const BlacklistTTL = 7 * 24 * time.Hour

func BlacklistKey(jti string) string {
	return fmt.Sprintf(BlacklistKeyPrefix, jti)
}

// RateLimitKey builds the counter key for a rate-limited resource and caller.
func RateLimitKey(resource, id string) string {
	return fmt.Sprintf(RateLimitKeyPrefix, resource, id)
}

// BlacklistToken marks the token ID as revoked on the given client until the
// token would have expired anyway.
func BlacklistToken(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if rdb == nil {
		return fmt.Errorf("redis unavailable")
	}
	if ttl <= 0 {
		ttl = BlacklistTTL
	}
	ctx, span := observability.GetTraceLayer().TraceRedisOperation(ctx, "blacklist_token")
	defer span.End()
	if err := rdb.Set(ctx, BlacklistKey(jti), "1", ttl).Err(); err != nil {
		observability.RedisErrorRate.WithLabelValues("blacklist_token").Inc()
		return err
	}
	return nil
}

// IsTokenBlacklisted reports whether the token ID has been revoked.
// When Redis is unavailable it reports false so that auth does not hard-fail.
func IsTokenBlacklisted(ctx context.Context, rdb *redis.Client, jti string) bool {
	if rdb == nil {
		return false
	}
	ctx, span := observability.GetTraceLayer().TraceRedisOperation(ctx, "blacklist_check")
	defer span.End()
	n, err := rdb.Exists(ctx, BlacklistKey(jti)).Result()
	if err != nil {
		observability.RedisErrorRate.WithLabelValues("blacklist_check").Inc()
		return false
	}
	return n > 0
}
