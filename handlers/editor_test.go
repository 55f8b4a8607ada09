package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"quick-notes/app"
	"quick-notes/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEditorApp(application *app.App) *fiber.App {
	fiberApp := setupTestApp()
	fiberApp.Post("/api/editor", handlers.OpenEditor(application))
	fiberApp.Get("/api/editor/:id", handlers.GetEditor(application))
	fiberApp.Delete("/api/editor/:id", handlers.CloseEditor(application))
	fiberApp.Put("/api/editor/:id/content", handlers.UpdateEditorContent(application))
	fiberApp.Post("/api/editor/:id/format", handlers.FormatSelection(application))
	fiberApp.Post("/api/editor/:id/undo", handlers.UndoEditor(application))
	fiberApp.Post("/api/editor/:id/redo", handlers.RedoEditor(application))
	fiberApp.Post("/api/editor/:id/save", handlers.SaveEditor(application))
	return fiberApp
}

func editorState(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	state, ok := body["editor"].(map[string]interface{})
	require.True(t, ok, "response should carry editor state: %v", body)
	return state
}

func openEditor(t *testing.T, fiberApp *fiber.App, body interface{}) string {
	t.Helper()
	status, resp := doJSON(t, fiberApp, http.MethodPost, "/api/editor", body)
	require.Equal(t, http.StatusCreated, status)
	return editorState(t, resp)["session_id"].(string)
}

func TestEditorFormattingFlow(t *testing.T) {
	application, _ := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	id := openEditor(t, fiberApp, nil)
	base := "/api/editor/" + id

	status, body := doJSON(t, fiberApp, http.MethodPut, base+"/content", map[string]interface{}{"content": "hello world"})
	require.Equal(t, http.StatusOK, status)
	state := editorState(t, body)
	assert.Equal(t, "hello world", state["content"])
	assert.Equal(t, false, state["can_undo"])
	assert.Equal(t, float64(2), state["words"])
	assert.Equal(t, float64(11), state["characters"])

	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/format", map[string]interface{}{
		"format": "bold", "start": 0, "end": 5,
	})
	require.Equal(t, http.StatusOK, status)
	state = editorState(t, body)
	assert.Equal(t, "<strong>hello</strong> world", state["content"])
	assert.Equal(t, true, state["can_undo"])
	assert.Equal(t, float64(0), state["selection_start"])
	assert.Equal(t, float64(22), state["selection_end"])

	// Toggling the same selection again unwraps it
	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/format", map[string]interface{}{
		"format": "bold", "start": 0, "end": 22,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello world", editorState(t, body)["content"])

	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/undo", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<strong>hello</strong> world", editorState(t, body)["content"])

	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/undo", nil)
	require.Equal(t, http.StatusOK, status)
	state = editorState(t, body)
	assert.Equal(t, "hello world", state["content"])
	assert.Equal(t, false, state["can_undo"])
	assert.Equal(t, true, state["can_redo"])

	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/redo", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<strong>hello</strong> world", editorState(t, body)["content"])

	status, body = doJSON(t, fiberApp, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<strong>hello</strong> world", editorState(t, body)["content"])
}

func TestEditorFormatUsesBrowserOffsets(t *testing.T) {
	application, _ := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	id := openEditor(t, fiberApp, nil)
	base := "/api/editor/" + id

	status, body := doJSON(t, fiberApp, http.MethodPut, base+"/content", map[string]interface{}{"content": "😀😀 hello"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10), editorState(t, body)["characters"])

	// A text field reports "he" as [5, 7): each emoji takes two units
	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/format", map[string]interface{}{
		"format": "bold", "start": 5, "end": 7,
	})
	require.Equal(t, http.StatusOK, status)
	state := editorState(t, body)
	assert.Equal(t, "😀😀 <strong>he</strong>llo", state["content"])
	assert.Equal(t, float64(5), state["selection_start"])
	assert.Equal(t, float64(24), state["selection_end"])

	status, body = doJSON(t, fiberApp, http.MethodPost, base+"/format", map[string]interface{}{
		"format": "bold", "start": 5, "end": 24,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "😀😀 hello", editorState(t, body)["content"])
}

func TestEditorFormatRejected(t *testing.T) {
	application, _ := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	id := openEditor(t, fiberApp, nil)
	base := "/api/editor/" + id

	status, _ := doJSON(t, fiberApp, http.MethodPut, base+"/content", map[string]interface{}{"content": "abc"})
	require.Equal(t, http.StatusOK, status)

	tests := []struct {
		name          string
		body          map[string]interface{}
		expectedError string
	}{
		{
			name:          "Unknown format",
			body:          map[string]interface{}{"format": "strike", "start": 0, "end": 1},
			expectedError: "Validation failed",
		},
		{
			name:          "End before start",
			body:          map[string]interface{}{"format": "italic", "start": 2, "end": 1},
			expectedError: "Validation failed",
		},
		{
			name:          "Selection past the end",
			body:          map[string]interface{}{"format": "italic", "start": 0, "end": 10},
			expectedError: "invalid selection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, http.MethodPost, base+"/format", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, body["error"], tt.expectedError)
		})
	}

	_, body := doJSON(t, fiberApp, http.MethodGet, base, nil)
	state := editorState(t, body)
	assert.Equal(t, "abc", state["content"])
	assert.Equal(t, false, state["can_undo"])
}

func TestEditorSave(t *testing.T) {
	application, store := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	t.Run("New note", func(t *testing.T) {
		id := openEditor(t, fiberApp, nil)
		base := "/api/editor/" + id

		doJSON(t, fiberApp, http.MethodPut, base+"/content", map[string]interface{}{"content": "draft"})

		status, body := doJSON(t, fiberApp, http.MethodPost, base+"/save", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Note saved successfully", body["message"])
		assert.Equal(t, float64(3000), body["dismiss_after_ms"])

		note := body["note"].(map[string]interface{})
		assert.Equal(t, "draft", note["text"])

		state := editorState(t, body)
		assert.Equal(t, "", state["content"])
		assert.Nil(t, state["note_id"])

		notes, err := store.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "draft", notes[0].Text)
	})

	t.Run("Existing note", func(t *testing.T) {
		noteID := seedNote(t, store, "first version", "2024-01-01T09:00:00.000Z")

		status, body := doJSON(t, fiberApp, http.MethodPost, "/api/editor", map[string]interface{}{"note_id": noteID})
		require.Equal(t, http.StatusCreated, status)
		state := editorState(t, body)
		assert.Equal(t, "first version", state["content"])
		assert.Equal(t, float64(noteID), state["note_id"])

		base := "/api/editor/" + state["session_id"].(string)
		doJSON(t, fiberApp, http.MethodPut, base+"/content", map[string]interface{}{"content": "second version"})

		status, _ = doJSON(t, fiberApp, http.MethodPost, base+"/save", nil)
		require.Equal(t, http.StatusOK, status)

		stored, err := store.GetByID(context.Background(), noteID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "second version", stored.Text)
	})

	t.Run("Empty content is rejected", func(t *testing.T) {
		id := openEditor(t, fiberApp, nil)

		status, body := doJSON(t, fiberApp, http.MethodPost, "/api/editor/"+id+"/save", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Note cannot be empty", body["error"])
	})
}

// Browsers send a beacon as a bodyless text/plain POST when the page unloads.
func TestEditorSaveFromBeacon(t *testing.T) {
	application, store := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	id := openEditor(t, fiberApp, nil)
	status, _ := doJSON(t, fiberApp, http.MethodPut, "/api/editor/"+id+"/content", map[string]interface{}{"content": "typed before leaving"})
	require.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodPost, "/api/editor/"+id+"/save", nil)
	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	notes, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "typed before leaving", notes[0].Text)
}

// Content typed before the session exists has nowhere to go.
func TestEditorContentWithoutSession(t *testing.T) {
	application, _ := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	status, body := doJSON(t, fiberApp, http.MethodPut, "/api/editor/not-open/content", map[string]interface{}{"content": "early"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Editor session not found", body["error"])
}

func TestEditorSessionLifecycle(t *testing.T) {
	application, _ := setupTestDB(t)
	fiberApp := setupEditorApp(application)

	status, body := doJSON(t, fiberApp, http.MethodPost, "/api/editor", map[string]interface{}{"note_id": 404})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", body["error"])

	id := openEditor(t, fiberApp, nil)

	status, _ = doJSON(t, fiberApp, http.MethodDelete, "/api/editor/"+id, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/editor/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Editor session not found", body["error"])

	status, _ = doJSON(t, fiberApp, http.MethodPost, "/api/editor/"+id+"/undo", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
