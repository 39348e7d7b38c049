// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinelog/cinelog/internal/platform/constants"
)

// # Revoked Token Repository

// RedisRevokedTokenRepository implements RevokedTokenRepository using Redis.
type RedisRevokedTokenRepository struct {
	client *redis.Client
}

// NewRevokedTokenRepository creates a new Redis-backed RevokedTokenRepository.
func NewRevokedTokenRepository(client *redis.Client) *RedisRevokedTokenRepository {
	return &RedisRevokedTokenRepository{client: client}
}

/*
Revoke denylists a token JTI until the token would have expired anyway.

Description: The key carries its own TTL, so entries vanish on their own
once the underlying token can no longer verify.

Parameters:
  - context: context.Context
  - jti: string
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisRevokedTokenRepository) Revoke(context context.Context, jti string, ttl time.Duration) error {

	// Use constants for key prefix
	key := constants.RedisPrefixRevokedToken + jti

	// A token at the edge of its lifetime still needs a positive TTL
	if ttl <= 0 {
		ttl = time.Second
	}

	// Set the denylist marker with TTL
	if err := repository.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoked_token_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
IsRevoked reports whether a token JTI has been denylisted.

Parameters:
  - context: context.Context
  - jti: string

Returns:
  - bool: True when the token is revoked
  - error: Connectivity errors
*/
func (repository *RedisRevokedTokenRepository) IsRevoked(context context.Context, jti string) (bool, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixRevokedToken + jti

	// Look up the denylist marker
	if err := repository.client.Get(context, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_revoked_token_get_failed: %w", err)
	}

	// The marker exists, so the token is revoked
	return true, nil
}
