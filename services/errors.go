package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrEmptyNote    = errors.New("note cannot be empty")
	ErrNoteNotFound = errors.New("note not found")

	// Editor errors
	ErrSessionNotFound = errors.New("editor session not found")

	// Preference errors
	ErrUnknownPreference = errors.New("unknown preference")
)
