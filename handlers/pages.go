package handlers

import (
	"quick-notes/app"
	"quick-notes/models"
	"quick-notes/templates/pages"

	"github.com/gofiber/fiber/v2"
)

// HomePage renders the notes page. A store failure still renders the page,
// with an empty list, and is logged.
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := c.Query("q")

		notes, err := a.Notes.List(c.UserContext(), search)
		if err != nil {
			a.Logger.Error("failed to load notes for page", "error", err)
			notes = []models.Note{}
		}

		prefs, err := a.Preferences.Load(c.UserContext())
		if err != nil {
			a.Logger.Error("failed to load preferences for page", "error", err)
		}

		c.Set("Content-Type", "text/html; charset=utf-8")
		return pages.Index(notes, prefs, search, a.Env).Render(c.UserContext(), c.Response().BodyWriter())
	}
}
