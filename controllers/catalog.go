package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// Health reports service liveness.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetBarbers returns the active barbers.
func GetBarbers(c *fiber.Ctx) error {
	var barbers []models.Barber
	if err := db.DB.Where("active = ?", true).Order("barber_id").Find(&barbers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch barbers",
			Error:   err.Error(),
		})
	}
	return c.JSON(barbers)
}

// GetServices returns the active services.
func GetServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Where("active = ?", true).Order("price").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}
