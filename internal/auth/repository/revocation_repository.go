package repository

import (
	"context"
	"time"

	"caresync/pkg/redis"
)

const revocationKeyPrefix = "auth:revoked:"

// redisRevocationRepository implements TokenRevocationRepository on Redis.
// Keys carry a TTL equal to the remaining token lifetime so the denylist
// cleans itself up.
type redisRevocationRepository struct {
	client *redis.Client
}

// NewTokenRevocationRepository creates a Redis-backed revocation repository.
func NewTokenRevocationRepository(client *redis.Client) TokenRevocationRepository {
	return &redisRevocationRepository{client: client}
}

func (r *redisRevocationRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to deny.
		return nil
	}
	return r.client.Set(ctx, revocationKeyPrefix+jti, "1", ttl).Err()
}

func (r *redisRevocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
