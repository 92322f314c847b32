package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/controllers"
	"github.com/barberbook/booking-api/middleware"
)

// SetupPublicRoutes configures the read surface and the public booking
// write path.
func SetupPublicRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", controllers.Health)
	api.Get("/barbers", controllers.GetBarbers)
	api.Get("/services", controllers.GetServices)
	api.Get("/available-times", controllers.GetAvailableTimes)
	api.Get("/available-times-batch", controllers.GetAvailableTimesBatch)
	api.Post("/bookings", middleware.Maintenance(), controllers.CreateBooking)
}
