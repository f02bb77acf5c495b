package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T) (*RedisList, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisList(client), mr
}

func TestRedisList_RevokeAndExpire(t *testing.T) {
	list, mr := newTestList(t)
	ctx := context.Background()

	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Minute, mr.TTL(revokedTokenKeyPrefix+"jti-1"))

	mr.FastForward(time.Minute)
	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisList_IgnoresEmptyAndExpired(t *testing.T) {
	list, mr := newTestList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "", time.Minute))
	require.NoError(t, list.Revoke(ctx, "jti-2", 0))
	assert.Empty(t, mr.Keys())

	revoked, err := list.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisList_ConnectionFailure(t *testing.T) {
	list, mr := newTestList(t)
	mr.Close()

	_, err := list.IsRevoked(context.Background(), "jti-3")
	require.Error(t, err)
}
