package handlers

import (
	"errors"
	"log"

	"pegawai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// handleServiceError maps a service error to the HTTP status for its kind:
// validation 400, bad credentials 401, missing record 404, duplicate 409.
// Anything else is an infrastructure failure and surfaces as 500.
func handleServiceError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrIncorrectPassword):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrEmployeeNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	default:
		log.Printf("Internal error: %v", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// ErrorHandler returns a global Fiber error handler so that errors escaping
// the handlers (unknown routes, method not allowed, panics recovered by
// fiber) still produce the same JSON shape.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "request failed",
			"error":   err.Error(),
		})
	}
}
