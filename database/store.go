package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"quick-notes/models"
)

// Store is the persistent note collection. It owns the database handle for
// the lifetime of the process; each call is its own implicit transaction.
type Store struct {
	path string

	mu sync.RWMutex
	db *DB
}

func NewStore(dbPath string) *Store {
	return &Store{path: dbPath}
}

// Init opens the database, creating and provisioning it if absent.
// Calling Init on an already open store does nothing.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := New(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.db = db
	return nil
}

// Close releases the handle. Operations issued afterwards fail with the
// driver's closed-database error wrapped as ErrRead or ErrWrite.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) handle() (*DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

// ListAll returns every stored note in key order.
func (s *Store) ListAll(ctx context.Context) ([]models.Note, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, text, date FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch notes: %w", ErrRead, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Text, &note.Date); err != nil {
			return nil, fmt.Errorf("%w: scan note: %w", ErrRead, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetch notes: %w", ErrRead, err)
	}
	return notes, nil
}

// Create inserts a new note and returns the id the store assigned to it.
// Any id already set on note is ignored.
func (s *Store) Create(ctx context.Context, note models.Note) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `INSERT INTO notes (text, date) VALUES (?, ?)`, note.Text, note.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: add note: %w", ErrWrite, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: add note: %w", ErrWrite, err)
	}
	return id, nil
}

// Update replaces the record at note.ID entirely. Like a put, a record that
// does not exist yet is written rather than reported.
func (s *Store) Update(ctx context.Context, note models.Note) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if note.ID <= 0 {
		return fmt.Errorf("%w: update note: missing id", ErrWrite)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO notes (id, text, date) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			date = excluded.date
	`, note.ID, note.Text, note.Date)
	if err != nil {
		return fmt.Errorf("%w: update note %d: %w", ErrWrite, note.ID, err)
	}
	return nil
}

// Delete removes the note with the given id. Deleting an absent id succeeds.
func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete note %d: %w", ErrWrite, id, err)
	}
	return nil
}

// GetByID returns the note with the given id, or nil if there is none.
func (s *Store) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var note models.Note
	err = db.QueryRowContext(ctx, `SELECT id, text, date FROM notes WHERE id = ?`, id).
		Scan(&note.ID, &note.Text, &note.Date)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch note %d: %w", ErrRead, id, err)
	}

	return &note, nil
}
