package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/middleware"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/redis"
	"github.com/barberbook/booking-api/utils"
)

type maintenanceRequest struct {
	Value *bool `json:"value"`
}

// SetMaintenanceMode toggles the public booking surface on or off.
func SetMaintenanceMode(c *fiber.Ctx) error {
	var req maintenanceRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Value must be a boolean",
		})
	}

	value := "off"
	if *req.Value {
		value = "on"
	}
	if err := models.SetSetting(db.DB, models.SettingMaintenanceMode, value); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to update setting",
			Error:   err.Error(),
		})
	}

	// Invalidate the cached flag so the middleware picks the change up
	// immediately.
	if err := redis.Client.Del(c.Context(), middleware.MaintenanceCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate maintenance cache: %v", err)
	}

	return c.JSON(fiber.Map{
		"message":         "Maintenance mode updated",
		"maintenanceMode": *req.Value,
	})
}
