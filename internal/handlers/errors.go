package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/verda/internal/checkout"
	"github.com/example/verda/internal/lifecycle"
)

// ErrorHandler recovers every core error at the operation boundary and maps
// it onto an HTTP status with a {message} body. Nothing reaching this point
// is fatal to the process; each failure is scoped to its request.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "please fill in all required fields with valid information",
			"errors":  validationErr.Fields,
		})
	}

	var guardErr *lifecycle.StateGuardError
	if errors.As(err, &guardErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": guardErr.Error(),
		})
	}

	var statusErr *lifecycle.InvalidStatusError
	if errors.As(err, &statusErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": statusErr.Error(),
		})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "not found",
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "something went wrong, please try again",
	})
}
