package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestRedisDenylist(t *testing.T) {
	rdb, mr := newMiniredisClient(t)
	denylist := NewRedisDenylist(rdb, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	denied, err := denylist.IsDenied(ctx, userID)
	require.NoError(t, err)
	assert.False(t, denied)

	require.NoError(t, denylist.Deny(ctx, userID))

	denied, err = denylist.IsDenied(ctx, userID)
	require.NoError(t, err)
	assert.True(t, denied)

	// The entry only needs to outlive the longest-lived token.
	mr.FastForward(time.Hour + time.Minute)

	denied, err = denylist.IsDenied(ctx, userID)
	require.NoError(t, err)
	assert.False(t, denied)
}

func TestRedisDenylist_IndependentUsers(t *testing.T) {
	rdb, _ := newMiniredisClient(t)
	denylist := NewRedisDenylist(rdb, time.Hour)
	ctx := context.Background()

	deniedUser := uuid.New()
	require.NoError(t, denylist.Deny(ctx, deniedUser))

	other, err := denylist.IsDenied(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, other)
}
