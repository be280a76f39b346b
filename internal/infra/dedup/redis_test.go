package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client, 90*time.Second), mr
}

func TestRedisSeenWithinTTL(t *testing.T) {
	store, _ := newTestRedis(t)

	seen, err := store.Seen(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = store.Seen(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestRedisKeyExpiresAfterTTL(t *testing.T) {
	store, mr := newTestRedis(t)

	store.Seen(context.Background(), "abc123")

	mr.FastForward(91 * time.Second)

	seen, err := store.Seen(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRedisUnavailableDegradesToDelivery(t *testing.T) {
	store, mr := newTestRedis(t)
	mr.Close()

	// Best effort: a down cache must not block the submission.
	seen, err := store.Seen(context.Background(), "abc123")
	assert.NoError(t, err)
	assert.False(t, seen)
}
