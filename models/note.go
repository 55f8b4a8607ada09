package models

// DateLayout is the ISO-8601 form every saved note carries in Date.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Note is the only persisted entity. ID is zero until the store assigns one.
type Note struct {
	ID   int64  `json:"id,omitempty"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type SaveNoteRequest struct {
	ID   *int64 `json:"id,omitempty" validate:"omitempty,gt=0"`
	Text string `json:"text" validate:"notblank"`
}

// Preference keys as stored in the preference area.
const (
	PrefDarkMode         = "darkMode"
	PrefSidebarCollapsed = "sidebarCollapsed"
)

type Preferences struct {
	DarkMode         bool `json:"darkMode"`
	SidebarCollapsed bool `json:"sidebarCollapsed"`
}

type TogglePreferenceRequest struct {
	Key string `json:"key" validate:"required,prefkey"`
}

type OpenEditorRequest struct {
	NoteID *int64 `json:"note_id,omitempty" validate:"omitempty,gt=0"`
}

type EditorContentRequest struct {
	Content string `json:"content"`
}

// FormatRequest selects [Start, End) in UTF-16 code units, as a browser
// text field reports it.
type FormatRequest struct {
	Format string `json:"format" validate:"required,formattag"`
	Start  int    `json:"start" validate:"gte=0"`
	End    int    `json:"end" validate:"gte=0,gtefield=Start"`
}

// EditorState is what the UI needs to redraw an editor. Characters and the
// selection are in UTF-16 code units.
type EditorState struct {
	SessionID      string `json:"session_id"`
	NoteID         *int64 `json:"note_id"`
	Content        string `json:"content"`
	CanUndo        bool   `json:"can_undo"`
	CanRedo        bool   `json:"can_redo"`
	Words          int    `json:"words"`
	Characters     int    `json:"characters"`
	SelectionStart int    `json:"selection_start"`
	SelectionEnd   int    `json:"selection_end"`
}
