package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
)

// CreateService adds a catalog service. Prices on existing bookings
// are snapshots and stay untouched.
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if service.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	var existingService models.Service
	if db.DB.First(&existingService, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	service.ID = existingService.ID
	if err := db.DB.Save(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	db.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}
