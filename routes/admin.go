package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/controllers/admin"
	"github.com/barberbook/booking-api/middleware"
)

// SetupAdminRoutes configures the authenticated admin surface.
func SetupAdminRoutes(app *fiber.App) {
	api := app.Group("/api/admin")
	api.Post("/login", admin.Login)

	api.Get("/bookings", middleware.Protected(), admin.ListBookings)
	api.Post("/bookings", middleware.Protected(), admin.CreateBooking)
	api.Get("/bookings/:id", middleware.Protected(), admin.GetBooking)
	api.Patch("/bookings/:id", middleware.Protected(), admin.UpdateBookingStatus)
	api.Delete("/bookings/:id", middleware.Protected(), admin.DeleteBooking)
	api.Post("/bookings/:id/reminder", middleware.Protected(), admin.SendReminder)

	api.Get("/closed-dates", middleware.Protected(), admin.ListClosedDates)
	api.Post("/closed-dates", middleware.Protected(), admin.CreateClosedDate)
	api.Delete("/closed-dates/:id", middleware.Protected(), admin.DeleteClosedDate)

	api.Get("/stats", middleware.Protected(), admin.GetStats)

	api.Post("/services", middleware.Protected(), admin.CreateService)
	api.Put("/services/:id", middleware.Protected(), admin.UpdateService)
	api.Delete("/services/:id", middleware.Protected(), admin.DeleteService)

	api.Post("/settings/maintenance", middleware.Protected(), admin.SetMaintenanceMode)
}
