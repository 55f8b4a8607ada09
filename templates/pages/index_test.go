package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"quick-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, notes []models.Note, prefs models.Preferences, search string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Index(notes, prefs, search, "test").Render(context.Background(), &buf))
	return buf.String()
}

func TestIndex(t *testing.T) {
	t.Run("Empty state", func(t *testing.T) {
		html := render(t, nil, models.Preferences{}, "")
		assert.Contains(t, html, `id="emptyState"`)
		assert.NotContains(t, html, "dark-mode")
		assert.Contains(t, html, `class="sidebar"`)
	})

	t.Run("Script hooks present", func(t *testing.T) {
		html := render(t, nil, models.Preferences{}, "")
		for _, id := range []string{"noteInput", "searchForm", "searchInput", "notesPanel", "loadingState", "errorToast", "wordCount", "saveBtn", "sidebarToggle"} {
			assert.Contains(t, html, `id="`+id+`"`)
		}
		for _, f := range []string{"bold", "italic", "underline"} {
			assert.Contains(t, html, `data-format="`+f+`"`)
		}
	})

	t.Run("Preferences applied", func(t *testing.T) {
		html := render(t, nil, models.Preferences{DarkMode: true, SidebarCollapsed: true}, "")
		assert.Contains(t, html, `<body class="dark-mode"`)
		assert.Contains(t, html, `class="sidebar collapsed"`)
	})

	t.Run("Notes are escaped", func(t *testing.T) {
		notes := []models.Note{{ID: 4, Text: "<script>x</script>\nsecond line", Date: "2024-01-01T00:00:00.000Z"}}
		html := render(t, notes, models.Preferences{}, `"><b>`)

		assert.Contains(t, html, `data-id="4"`)
		assert.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
		assert.NotContains(t, html, "<script>x</script>")
		assert.NotContains(t, html, "second line")
		assert.Contains(t, html, `value="&#34;&gt;&lt;b&gt;"`)
		assert.NotContains(t, html, `id="emptyState"`)
	})

	t.Run("Notes render in order with their own ids", func(t *testing.T) {
		notes := []models.Note{
			{ID: 9, Text: "newer", Date: "2024-02-01T00:00:00.000Z"},
			{ID: 2, Text: "older", Date: "2024-01-01T00:00:00.000Z"},
		}
		html := render(t, notes, models.Preferences{}, "")

		newer := strings.Index(html, `data-id="9"`)
		older := strings.Index(html, `data-id="2"`)
		require.NotEqual(t, -1, newer)
		require.NotEqual(t, -1, older)
		assert.Less(t, newer, older)
		assert.Equal(t, 2, strings.Count(html, `class="note"`))
	})
}
