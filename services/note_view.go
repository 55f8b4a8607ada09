package services

import (
	"sort"
	"strings"
	"time"

	"quick-notes/models"
)

const titleLength = 40

// ProjectNotes returns the notes whose text contains term, ignoring case,
// newest first. Notes with equal dates keep their stored order. The input
// slice is not modified.
func ProjectNotes(notes []models.Note, term string) []models.Note {
	needle := strings.ToLower(term)

	projected := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Text), needle) {
			projected = append(projected, note)
		}
	}

	sort.SliceStable(projected, func(i, j int) bool {
		return parseDate(projected[i].Date).After(parseDate(projected[j].Date))
	})

	return projected
}

// parseDate accepts full timestamps and bare dates. Anything else is the
// zero time and sorts last.
func parseDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// NoteTitle is the first line of the note, cut to 40 characters.
func NoteTitle(note models.Note) string {
	line, _, _ := strings.Cut(note.Text, "\n")
	runes := []rune(line)
	if len(runes) > titleLength {
		runes = runes[:titleLength]
	}
	return string(runes)
}

// NoteTime formats the note's date for display, falling back to the raw value.
func NoteTime(note models.Note, loc *time.Location) string {
	t := parseDate(note.Date)
	if t.IsZero() {
		return note.Date
	}
	return t.In(loc).Format("Jan 2, 2006 15:04")
}
