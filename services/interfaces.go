package services

import (
	"context"

	"quick-notes/editor"
	"quick-notes/models"
)

// NoteStore defines the persistent note collection
type NoteStore interface {
	ListAll(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (int64, error)
	Update(ctx context.Context, note models.Note) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
}

// SessionStore defines the registry of open editor sessions
type SessionStore interface {
	Save(sess *editor.Session)
	Get(sessionID string) (*editor.Session, bool)
	Delete(sessionID string)
}

// PreferenceStore defines the key-value area for UI preferences
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
