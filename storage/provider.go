package storage

import (
	"context"
	"fmt"

	"quick-notes/database"
)

// PreferenceStore is the key-value area holding UI preferences.
// Values are plain strings; writes are not transactional.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by NewPreferenceStore.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Options struct {
	Backend  string
	Path     string
	RedisURL string
}

// NewPreferenceStore opens the preference backend named in opts.
func NewPreferenceStore(ctx context.Context, opts Options) (PreferenceStore, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		return database.OpenPreferenceStore(ctx, opts.Path)
	case BackendRedis:
		return NewRedisPreferences(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("unknown preference backend %q", opts.Backend)
	}
}
