package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/controllers"
	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

type statusCount struct {
	Status models.BookingStatus `json:"status"`
	Count  int64                `json:"count"`
}

// GetStats returns booking counts and revenue for the admin's scope.
// Revenue is the ledger plus open bookings not yet ledgered; completed
// bookings deleted later stay counted through their ledger entry.
func GetStats(c *fiber.Ctx) error {
	scope, err := scopedBarberID(c)
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}
	filter := models.StatsFilter{
		BarberID: scope,
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
	}

	bookingQuery := func() *gorm.DB {
		q := db.DB.Model(&models.Booking{})
		if scope != nil {
			q = q.Where("barber_id = ?", *scope)
		}
		return q
	}

	var totalBookings int64
	if err := bookingQuery().Count(&totalBookings).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to compute stats",
			Error:   err.Error(),
		})
	}

	var byStatus []statusCount
	if err := bookingQuery().
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to compute stats",
			Error:   err.Error(),
		})
	}

	today := Now().In(utils.Location()).Format("2006-01-02")
	var todayBookings int64
	if err := bookingQuery().Where("appointment_date = ?", today).Count(&todayBookings).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to compute stats",
			Error:   err.Error(),
		})
	}

	totalRevenue, err := models.TotalRevenue(db.DB, filter)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to compute revenue",
			Error:   err.Error(),
		})
	}

	trends, err := models.RevenueTrends(db.DB, filter)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to compute trends",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"totalBookings":    totalBookings,
		"bookingsByStatus": byStatus,
		"todayBookings":    todayBookings,
		"totalRevenue":     totalRevenue,
		"trends":           trends,
	})
}
