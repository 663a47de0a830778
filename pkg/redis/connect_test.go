package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/redis"
)

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want error
	}{
		{name: "empty", url: "", want: redis.ErrEmptyConnectionURL},
		{name: "http scheme", url: "http://localhost:6379", want: redis.ErrFailedToParseURL},
		{name: "no scheme", url: "localhost:6379", want: redis.ErrFailedToParseURL},
		{name: "invalid database", url: "redis://localhost:6379/notanumber", want: redis.ErrFailedToParseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := redis.Config{URL: tt.url}.Options()
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("overrides apply", func(t *testing.T) {
		t.Parallel()
		opts, err := redis.Config{
			URL:         "redis://localhost:6379/2",
			PoolSize:    7,
			ReadTimeout: time.Second,
		}.Options()
		require.NoError(t, err)
		require.Equal(t, 7, opts.PoolSize)
		require.Equal(t, 2, opts.DB)
		require.Equal(t, time.Second, opts.ReadTimeout)
	})
}

func TestOpen_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redis.Open(ctx, redis.Config{
		URL:            "redis://127.0.0.1:1",
		ConnectRetries: 1,
		DialTimeout:    100 * time.Millisecond,
	})
	require.ErrorIs(t, err, redis.ErrConnectionFailed)
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, redis.Healthcheck(nil)(context.Background()), redis.ErrHealthcheckFailed)
}
