package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devconnect/pkg/auth"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisDenylist struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDenylist stores denied user ids with a TTL of one token
// lifespan: after that every token issued before the denial has expired
// on its own and the entry can go.
func NewRedisDenylist(rdb *redis.Client, ttl time.Duration) auth.Denylist {
	return &redisDenylist{rdb: rdb, ttl: ttl}
}

func denylistKey(userID uuid.UUID) string {
	return fmt.Sprintf("denylist:user:%s", userID)
}

func (d *redisDenylist) Deny(ctx context.Context, userID uuid.UUID) error {
	if err := d.rdb.Set(ctx, denylistKey(userID), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("deny user tokens: %w", err)
	}
	return nil
}

func (d *redisDenylist) IsDenied(ctx context.Context, userID uuid.UUID) (bool, error) {
	err := d.rdb.Get(ctx, denylistKey(userID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check denylist: %w", err)
	}
	return true, nil
}
