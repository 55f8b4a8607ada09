package editor

import (
	"sync"
	"time"

	"quick-notes/models"

	"github.com/google/uuid"
)

// Session is one open editor: the note being edited, its text and its
// history. Methods are safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	noteID     *int64
	history    *History
	selection  [2]int
	lastUsedAt time.Time
}

// NewSession opens an editor on content. noteID is nil for a new note.
func NewSession(noteID *int64, content string) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		noteID:     copyID(noteID),
		history:    NewHistory(content),
		lastUsedAt: now,
	}
}

// State returns a snapshot of the session for rendering.
func (s *Session) State() models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Content returns the current text and the note it belongs to.
func (s *Session) Content() (string, *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Content(), copyID(s.noteID)
}

// SetContent replaces the text as typed input does, without a snapshot.
func (s *Session) SetContent(content string) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Replace(content)
	s.touchLocked()
	return s.stateLocked()
}

// Format toggles f over [start, end). A rejected selection or format leaves
// the history untouched.
func (s *Session) Format(start, end int, f Format) (models.EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := Toggle(s.history.Content(), start, end, f)
	if err != nil {
		return models.EditorState{}, err
	}

	s.history.Apply(sel.Text)
	s.touchLocked()
	s.selection = [2]int{sel.Start, sel.End}
	return s.stateLocked(), nil
}

func (s *Session) Undo() models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.history.Undo() {
		s.touchLocked()
	}
	return s.stateLocked()
}

func (s *Session) Redo() models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.history.Redo() {
		s.touchLocked()
	}
	return s.stateLocked()
}

// Reset clears the editor after a save. History is kept.
func (s *Session) Reset() models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Replace("")
	s.noteID = nil
	s.touchLocked()
	return s.stateLocked()
}

func (s *Session) LastUsedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsedAt
}

func (s *Session) touchLocked() {
	s.lastUsedAt = time.Now()
	s.selection = [2]int{}
}

func (s *Session) stateLocked() models.EditorState {
	content := s.history.Content()
	stats := Count(content)
	return models.EditorState{
		SessionID:      s.ID,
		NoteID:         copyID(s.noteID),
		Content:        content,
		CanUndo:        s.history.CanUndo(),
		CanRedo:        s.history.CanRedo(),
		Words:          stats.Words,
		Characters:     stats.Characters,
		SelectionStart: s.selection[0],
		SelectionEnd:   s.selection[1],
	}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
