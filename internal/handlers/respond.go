package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rentora/rentora-backend/internal/dto"
	"github.com/rentora/rentora-backend/internal/services"
)

// fail maps service errors onto the response envelope and HTTP status.
func fail(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Invalid("Validation failed", verr.Fields))
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Resource not found"))
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Not allowed"))
	case errors.Is(err, services.ErrAccountRestricted):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Account is suspended or banned"))
	case errors.Is(err, services.ErrDuplicateReport):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("You have already reported this content"))
	case errors.Is(err, services.ErrAlreadyAppealed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("This report has already been appealed"))
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("Invalid status transition"))
	case errors.Is(err, services.ErrContentRejected):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("Content rejected: it looks like spam"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
}
