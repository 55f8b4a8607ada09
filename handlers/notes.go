package handlers

import (
	"strings"

	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotes returns the notes matching ?q=, newest first
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(c.UserContext(), c.Query("q"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to load notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetNote retrieves a single note
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Get(c.UserContext(), id)
		if err != nil {
			return storeError(c, a.Logger, "Failed to load note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// SaveNote creates a note, or replaces it when an id is given
func SaveNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if strings.TrimSpace(req.Text) == "" {
			return badRequest(c, "Note cannot be empty")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Save(c.UserContext(), req.ID, req.Text)
		if err != nil {
			return storeError(c, a.Logger, "Failed to save note", err)
		}

		if req.ID == nil {
			c.Status(fiber.StatusCreated)
		}
		return notify(c, "Note saved successfully", fiber.Map{"note": note})
	}
}

// DeleteNote removes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.Delete(c.UserContext(), id); err != nil {
			return storeError(c, a.Logger, "Failed to delete note", err)
		}

		return notify(c, "Note deleted successfully", nil)
	}
}
