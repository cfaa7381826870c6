package server

import (
	"errors"

	"campushire/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps an application error to the HTTP status describing
// its category. Unknown errors are internal failures.
func statusForError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}

	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "CONFLICT":
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError writes the standard error body with the status
// matching the error's category.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// deletedResponse is the body returned by every hard-delete endpoint.
func deletedResponse(resource string) fiber.Map {
	return fiber.Map{"message": resource + " deleted successfully"}
}
