package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/redis"
)

// MaintenanceCacheKey is the Redis key caching the maintenance flag.
// The admin toggle deletes it so the change takes effect immediately.
const MaintenanceCacheKey = "settings:maintenance_mode"

// Maintenance returns 503 on public writes while maintenance mode is
// on. The flag lives in the settings table and is cached in Redis for
// a minute; the admin toggle invalidates the cache.
func Maintenance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		on, err := maintenanceOn(c)
		if err != nil {
			// The flag is best-effort; never block bookings on a cache
			// hiccup.
			log.Printf("Maintenance check failed: %v", err)
			return c.Next()
		}
		if on {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Bookings are temporarily paused for maintenance",
			})
		}
		return c.Next()
	}
}

func maintenanceOn(c *fiber.Ctx) (bool, error) {
	cached, err := redis.Client.Get(c.Context(), MaintenanceCacheKey).Result()
	if err == nil {
		return cached == "on", nil
	}
	if err != goredis.Nil {
		return false, err
	}

	value, err := models.GetSetting(db.DB, models.SettingMaintenanceMode, "off")
	if err != nil {
		return false, err
	}
	if err := redis.Client.Set(c.Context(), MaintenanceCacheKey, value, time.Minute).Err(); err != nil {
		log.Printf("Failed to cache maintenance flag: %v", err)
	}
	return value == "on", nil
}
