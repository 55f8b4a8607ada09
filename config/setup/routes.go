package setup

import (
	"time"

	"quick-notes/app"
	"quick-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Static("/static", "./static", fiber.Static{
		Compress:      true,
		CacheDuration: time.Hour,
		MaxAge:        3600,
	})

	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.SaveNote(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))

	api.Post("/editor", handlers.OpenEditor(application))
	api.Get("/editor/:id", handlers.GetEditor(application))
	api.Delete("/editor/:id", handlers.CloseEditor(application))
	api.Put("/editor/:id/content", handlers.UpdateEditorContent(application))
	api.Post("/editor/:id/format", handlers.FormatSelection(application))
	api.Post("/editor/:id/undo", handlers.UndoEditor(application))
	api.Post("/editor/:id/redo", handlers.RedoEditor(application))
	api.Post("/editor/:id/save", handlers.SaveEditor(application))

	api.Get("/preferences", handlers.GetPreferences(application))
	api.Post("/preferences/:key/toggle", handlers.TogglePreference(application))
}
