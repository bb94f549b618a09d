package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvaldes-dev/portfolio-api/internal/service"
)

// ErrorResponse is the common structure for failure responses.
type ErrorResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Errors  []service.FieldViolation `json:"errors,omitempty"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Message: message,
	})
}

// SendValidationError sends a 422 carrying every violated field constraint.
func SendValidationError(c *fiber.Ctx, violations []service.FieldViolation) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Message: "validation failed",
		Errors:  violations,
	})
}
