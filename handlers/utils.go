package handlers

import (
	"errors"
	"log/slog"

	"quick-notes/database"
	"quick-notes/editor"
	"quick-notes/services"
	"quick-notes/validator"

	"github.com/gofiber/fiber/v2"
)

// toastMillis is how long the UI keeps a notification on screen.
const toastMillis = 3000

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// notify is a success response that the UI shows as a toast.
func notify(c *fiber.Ctx, message string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["message"] = message
	data["dismiss_after_ms"] = toastMillis
	return c.JSON(data)
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":            message,
		"dismiss_after_ms": toastMillis,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return failure(c, fiber.StatusBadRequest, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return failure(c, fiber.StatusNotFound, message)
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":            "Validation failed",
			"details":          errs,
			"dismiss_after_ms": toastMillis,
		})
	}
	return badRequest(c, err.Error())
}

// storeError logs the diagnostic detail and answers with the user-facing
// message. The status follows the kind of failure.
func storeError(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrEmptyNote):
		return badRequest(c, "Note cannot be empty")
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrSessionNotFound):
		return notFound(c, "Editor session not found")
	case errors.Is(err, services.ErrUnknownPreference),
		errors.Is(err, editor.ErrUnknownFormat),
		errors.Is(err, editor.ErrInvalidSelection):
		return badRequest(c, err.Error())
	case errors.Is(err, database.ErrNotInitialized), errors.Is(err, database.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}

	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	logger.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return failure(c, status, message)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid note id")
	}
	return int64(id), nil
}
