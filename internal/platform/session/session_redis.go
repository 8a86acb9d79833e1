// Package session keeps the set of logged-out session tokens in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRedis records revoked token ids as Redis keys that expire
// together with the token they block.
type RevocationRedis struct {
	client *redis.Client
	prefix string
}

// NewRevocationRedis creates a RevocationRedis storing keys under prefix.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	return &RevocationRedis{
		client: client,
		prefix: prefix,
	}
}

func (r *RevocationRedis) key(jti string) string {
	return fmt.Sprintf("%s:revoked:%s", r.prefix, jti)
}

// Revoke blocks jti until expiresAt. A token that has already expired needs no entry.
func (r *RevocationRedis) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(jti), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether jti was revoked and has not yet expired.
func (r *RevocationRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, r.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}
