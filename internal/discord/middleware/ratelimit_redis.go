package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

const rateLimitKeyPrefix = "challenge:ratelimit:"

// RedisRateLimitStore shares fixed window counters across bot instances
type RedisRateLimitStore struct {
	client redis.UniversalClient
}

// NewRedisRateLimitStore creates a Redis-backed store
func NewRedisRateLimitStore(client redis.UniversalClient) *RedisRateLimitStore {
	if client == nil {
		panic("redis client is required")
	}
	return &RedisRateLimitStore{client: client}
}

// Increment counts a request. The window TTL is set with NX on every hit, so a
// key whose expiry was lost gets one again on its next request.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	redisKey := rateLimitKeyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, cberr.WrapWithCode(err, cberr.CodeUnavailable, "failed to count request").
			WithMeta("key", redisKey)
	}

	return int(incr.Val()), nil
}
