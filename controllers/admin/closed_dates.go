package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/controllers"
	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// ListClosedDates returns every closure, earliest first.
func ListClosedDates(c *fiber.Ctx) error {
	var closures []models.ClosedDate
	if err := db.DB.Order("start_date").Find(&closures).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch closed dates",
			Error:   err.Error(),
		})
	}
	return c.JSON(closures)
}

type closedDateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	BarberID  *uint  `json:"barber_id"`
}

// CreateClosedDate stores a new closure, rejecting inverted ranges and
// overlaps with existing closures of intersecting scope.
func CreateClosedDate(c *fiber.Ctx) error {
	var req closedDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start date",
			Error:   err.Error(),
		})
	}
	if _, err := utils.ParseDate(req.EndDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end date",
			Error:   err.Error(),
		})
	}

	username, _ := c.Locals("username").(string)
	closure := models.ClosedDate{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		BarberID:  req.BarberID,
		CreatedBy: username,
	}
	if err := models.CreateClosedDate(db.DB, &closure); err != nil {
		return controllers.RenderBookingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      closure.ID,
		"message": "Created",
	})
}

// DeleteClosedDate removes a closure by id.
func DeleteClosedDate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return controllers.RenderBookingError(c, models.ErrNotFound)
	}
	if err := models.DeleteClosedDate(db.DB, uint(id)); err != nil {
		return controllers.RenderBookingError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}
