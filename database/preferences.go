package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PreferenceStore is a plain key-value area kept in its own SQLite file,
// apart from the notes database.
type PreferenceStore struct {
	db *DB
}

func OpenPreferenceStore(ctx context.Context, path string) (*PreferenceStore, error) {
	db, err := New(path)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	return &PreferenceStore{db: db}, nil
}

// Get returns the stored value and whether the key was present.
func (p *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *PreferenceStore) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (p *PreferenceStore) Close() error {
	return p.db.Close()
}
