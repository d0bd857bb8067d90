// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package session

import (
	stdctx "context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/vinera/vinera/internal/platform/constants"
	"github.com/vinera/vinera/internal/platform/dberr"
)

// RedisRepository implements [Repository] against the shared session store.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository constructs a Redis backed session store.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (repository *RedisRepository) Resolve(context stdctx.Context, token string) (string, error) {
	userID, err := repository.client.Get(context, constants.RedisPrefixSession+token).Result()
	if err != nil {
		// Expired and unknown tokens look identical on purpose.
		if errors.Is(err, redis.Nil) {
			return "", dberr.ErrNotFound
		}
		return "", dberr.Wrap(err, "resolve_session")
	}
	return userID, nil
}
