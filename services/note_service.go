package services

import (
	"context"
	"strings"
	"time"

	"quick-notes/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	store NoteStore
	now   func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(store NoteStore) *NoteService {
	return &NoteService{
		store: store,
		now:   time.Now,
	}
}

// Save creates the note when id is nil and fully replaces it otherwise.
// Blank text never reaches the store.
func (ns *NoteService) Save(ctx context.Context, id *int64, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}

	note := models.Note{
		Text: text,
		Date: ns.now().UTC().Format(models.DateLayout),
	}

	if id != nil {
		note.ID = *id
		if err := ns.store.Update(ctx, note); err != nil {
			return nil, err
		}
		return &note, nil
	}

	newID, err := ns.store.Create(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = newID

	return &note, nil
}

// Get retrieves a single note
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// List returns the notes matching term, newest first
func (ns *NoteService) List(ctx context.Context, term string) ([]models.Note, error) {
	notes, err := ns.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectNotes(notes, term), nil
}

// Delete removes a note; deleting a missing note succeeds
func (ns *NoteService) Delete(ctx context.Context, id int64) error {
	return ns.store.Delete(ctx, id)
}
