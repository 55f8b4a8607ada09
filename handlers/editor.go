package handlers

import (
	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

// OpenEditor starts an editor session, blank or on an existing note
func OpenEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.OpenEditorRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		state, err := a.Editor.Open(c.UserContext(), req.NoteID)
		if err != nil {
			return storeError(c, a.Logger, "Failed to load note", err)
		}

		return created(c, fiber.Map{"editor": state})
	}
}

// GetEditor returns the current state of a session
func GetEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := a.Editor.State(c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to load editor", err)
		}
		return success(c, fiber.Map{"editor": state})
	}
}

// UpdateEditorContent records typed input; it is not an undo step
func UpdateEditorContent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EditorContentRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		state, err := a.Editor.SetContent(c.Params("id"), req.Content)
		if err != nil {
			return storeError(c, a.Logger, "Failed to update editor", err)
		}
		return success(c, fiber.Map{"editor": state})
	}
}

// FormatSelection toggles bold, italic or underline over a selection
func FormatSelection(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FormatRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		state, err := a.Editor.Format(c.Params("id"), req.Format, req.Start, req.End)
		if err != nil {
			return storeError(c, a.Logger, "Failed to apply format", err)
		}
		return success(c, fiber.Map{"editor": state})
	}
}

func UndoEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := a.Editor.Undo(c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to undo", err)
		}
		return success(c, fiber.Map{"editor": state})
	}
}

func RedoEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := a.Editor.Redo(c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to redo", err)
		}
		return success(c, fiber.Map{"editor": state})
	}
}

// SaveEditor saves the session's content as a note and clears the editor
func SaveEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, state, err := a.Editor.Save(c.UserContext(), c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to save note", err)
		}
		return notify(c, "Note saved successfully", fiber.Map{"note": note, "editor": state})
	}
}

// CloseEditor discards a session
func CloseEditor(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Editor.Close(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}
