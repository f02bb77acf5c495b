package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/identity-service/internal/config"
)

func TestRedisPing(t *testing.T) {
	srv := miniredis.RunT(t)

	r := NewRedis(config.RedisConfig{Addr: srv.Addr()}, zap.NewNop())
	defer r.Close()
	require.NoError(t, r.Ping(context.Background()))

	srv.Close()
	assert.Error(t, r.Ping(context.Background()))
}

func TestNilHandles(t *testing.T) {
	var r *Redis
	assert.ErrorIs(t, r.Ping(context.Background()), ErrNoRedis)
	r.Close()

	var pg *Postgres
	assert.ErrorIs(t, pg.Ping(context.Background()), ErrNoDatabase)
	assert.Nil(t, pg.PoolHandle())
	pg.Close()

	empty := &Postgres{}
	assert.ErrorIs(t, empty.Ping(context.Background()), ErrNoDatabase)
}

func TestNewPostgres_WithoutDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, pg.PoolHandle())
}
