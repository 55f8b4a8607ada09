package app

import (
	"log/slog"

	"quick-notes/services"
	"quick-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes       *services.NoteService
	Editor      *services.EditorService
	Preferences *services.PreferenceService
	Validator   *validator.Validator
	Logger      *slog.Logger
	Env         string
}

// New creates a new App instance with all dependencies
func New(store services.NoteStore, sessions services.SessionStore, prefs services.PreferenceStore, logger *slog.Logger, env string) *App {
	notes := services.NewNoteService(store)

	return &App{
		Notes:       notes,
		Editor:      services.NewEditorService(notes, sessions),
		Preferences: services.NewPreferenceService(prefs),
		Validator:   validator.New(),
		Logger:      logger,
		Env:         env,
	}
}
