package services

import (
	"context"

	"quick-notes/editor"
	"quick-notes/models"
)

// EditorService manages editor sessions and saving their content
type EditorService struct {
	notes    *NoteService
	sessions SessionStore
}

// NewEditorService creates a new editor service
func NewEditorService(notes *NoteService, sessions SessionStore) *EditorService {
	return &EditorService{
		notes:    notes,
		sessions: sessions,
	}
}

// Open starts an editor session, loading the note when noteID is set
func (es *EditorService) Open(ctx context.Context, noteID *int64) (models.EditorState, error) {
	content := ""
	if noteID != nil {
		note, err := es.notes.Get(ctx, *noteID)
		if err != nil {
			return models.EditorState{}, err
		}
		content = note.Text
	}

	sess := editor.NewSession(noteID, content)
	es.sessions.Save(sess)
	return sess.State(), nil
}

func (es *EditorService) session(sessionID string) (*editor.Session, error) {
	sess, ok := es.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// State returns the current state of a session
func (es *EditorService) State(sessionID string) (models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return models.EditorState{}, err
	}
	return sess.State(), nil
}

// SetContent records typed input
func (es *EditorService) SetContent(sessionID, content string) (models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return models.EditorState{}, err
	}
	return sess.SetContent(content), nil
}

// Format toggles an inline format over the selection
func (es *EditorService) Format(sessionID, format string, start, end int) (models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return models.EditorState{}, err
	}

	f, err := editor.ParseFormat(format)
	if err != nil {
		return models.EditorState{}, err
	}

	return sess.Format(start, end, f)
}

func (es *EditorService) Undo(sessionID string) (models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return models.EditorState{}, err
	}
	return sess.Undo(), nil
}

func (es *EditorService) Redo(sessionID string) (models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return models.EditorState{}, err
	}
	return sess.Redo(), nil
}

// Save persists the session's content and clears the editor. On failure the
// session is left as it was so the user can try again.
func (es *EditorService) Save(ctx context.Context, sessionID string) (*models.Note, models.EditorState, error) {
	sess, err := es.session(sessionID)
	if err != nil {
		return nil, models.EditorState{}, err
	}

	content, noteID := sess.Content()
	note, err := es.notes.Save(ctx, noteID, content)
	if err != nil {
		return nil, sess.State(), err
	}

	return note, sess.Reset(), nil
}

// Close discards a session
func (es *EditorService) Close(sessionID string) {
	es.sessions.Delete(sessionID)
}
