package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenKeyPrefix = "webdesa-revoked-token||"

// RedisRevocationList keeps revoked token ids in redis until the tokens
// would have expired on their own.
type RedisRevocationList struct {
	redisClient *redis.Client
}

func NewRedisRevocationList(redisClient *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{
		redisClient: redisClient,
	}
}

func (l *RedisRevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return l.redisClient.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err()
}

func (l *RedisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.redisClient.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
