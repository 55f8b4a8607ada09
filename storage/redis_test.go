package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPreferences(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	prefs, err := NewPreferenceStore(ctx, Options{Backend: BackendRedis, RedisURL: redisURL})
	require.NoError(t, err)
	defer prefs.Close()

	require.NoError(t, prefs.Set(ctx, "darkMode", "true"))

	value, ok, err := prefs.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestNewPreferenceStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to sqlite", func(t *testing.T) {
		prefs, err := NewPreferenceStore(ctx, Options{Path: t.TempDir() + "/prefs.db"})
		require.NoError(t, err)
		defer prefs.Close()

		_, ok, err := prefs.Get(ctx, "darkMode")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unknown backend", func(t *testing.T) {
		_, err := NewPreferenceStore(ctx, Options{Backend: "memcached"})
		assert.ErrorContains(t, err, "unknown preference backend")
	})

	t.Run("Unreachable redis", func(t *testing.T) {
		_, err := NewPreferenceStore(ctx, Options{Backend: BackendRedis, RedisURL: "redis://127.0.0.1:1/0"})
		assert.ErrorContains(t, err, "failed to connect to redis")
	})
}
