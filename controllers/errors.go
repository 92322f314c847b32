package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// RenderBookingError maps the engine's error taxonomy to HTTP. Every
// kind keeps its structure (missing field names, retry-after seconds,
// conflicting ranges) so clients can render a specific message.
func RenderBookingError(c *fiber.Ctx, err error) error {
	var missing *models.MissingFieldsError
	var closed *models.DateClosedError
	var quotaErr *models.QuotaExceededError
	var overlap *models.OverlapConflictError

	switch {
	case errors.As(err, &missing):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"fields":  missing.Fields,
		})
	case errors.Is(err, models.ErrUnknownBarber):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown barber",
		})
	case errors.Is(err, models.ErrSlotBlocked):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Time slot is reserved for a break",
		})
	case errors.As(err, &closed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Date is closed for bookings",
			"reason":  closed.Reason,
		})
	case errors.As(err, &quotaErr):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"message":           "Booking limit reached for this device",
			"retryAfterSeconds": int(quotaErr.RetryAfter.Seconds()),
		})
	case errors.Is(err, models.ErrSlotTaken):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This time slot is already booked",
		})
	case errors.Is(err, models.ErrBookingModified):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking was changed by another request, reload and retry",
		})
	case errors.As(err, &overlap):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":   "Date range overlaps existing closures",
			"conflicts": overlap.Ranges,
		})
	case errors.Is(err, models.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid input",
			Error:   err.Error(),
		})
	case errors.Is(err, models.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Start date is after end date",
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Not found",
		})
	case errors.Is(err, models.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Service temporarily unavailable",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Internal error",
			Error:   err.Error(),
		})
	}
}
