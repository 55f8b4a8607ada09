package handlers

import (
	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

// GetPreferences returns the persisted UI flags
func GetPreferences(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefs, err := a.Preferences.Load(c.UserContext())
		if err != nil {
			return storeError(c, a.Logger, "Failed to load preferences", err)
		}
		return success(c, fiber.Map{"preferences": prefs})
	}
}

// TogglePreference flips one flag and persists it
func TogglePreference(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := models.TogglePreferenceRequest{Key: c.Params("key")}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		value, err := a.Preferences.Toggle(c.UserContext(), req.Key)
		if err != nil {
			return storeError(c, a.Logger, "Failed to save preference", err)
		}
		return success(c, fiber.Map{"key": req.Key, "value": value})
	}
}
