package api

import (
	"errors"
	"log"

	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a storage-layer failure and surfaces as an opaque 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrDuplicateDailyLog):
		return apiError(c, fiber.StatusBadRequest, "A log already exists for this day")
	case errors.Is(err, services.ErrEditWindowClosed):
		return apiError(c, fiber.StatusForbidden, "Logs can only be edited on the day they were created")
	case errors.Is(err, services.ErrLogNotFound):
		return apiError(c, fiber.StatusNotFound, "Log not found")
	case errors.Is(err, services.ErrMissingRangeBound):
		return apiError(c, fiber.StatusBadRequest, "Start and end dates are required for custom period")
	case errors.Is(err, services.ErrInvalidDateFormat):
		return apiError(c, fiber.StatusBadRequest, "Invalid date format")
	case errors.Is(err, services.ErrInvertedRange):
		return apiError(c, fiber.StatusBadRequest, "End date must be after start date")
	case errors.Is(err, services.ErrUnknownPeriod):
		return apiError(c, fiber.StatusBadRequest, "Invalid period")
	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
