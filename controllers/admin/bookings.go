package admin

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/controllers"
	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// Now is the clock for lazy lifecycle sweeps; tests swap it out.
var Now = time.Now

// scopedBarberID returns the barber the request is limited to: an
// explicit barberId filter, or the admin's own scope unless showAll is
// granted. nil means all barbers.
func scopedBarberID(c *fiber.Ctx) (*uint, error) {
	if raw := c.Query("barberId"); raw != "" {
		id, err := models.ParseBarberID(raw)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	if c.Query("showAll") == "true" {
		return nil, nil
	}
	if scope, ok := c.Locals("barberID").(uint); ok {
		return &scope, nil
	}
	return nil, nil
}

// completeDue lazily finishes confirmed bookings whose time has
// passed, recording their revenue. Reads trigger it so reporting stays
// truthful without a scheduler; the cron sweep covers idle periods.
func completeDue(bookings []models.Booking, now time.Time) []models.Booking {
	for i := range bookings {
		if !bookings[i].Due(now) {
			continue
		}
		b := &bookings[i]
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			_, err := b.CompleteIfDue(tx, now)
			return err
		})
		if err != nil {
			log.Printf("Failed to complete booking %d: %v", b.ID, err)
		}
	}
	return bookings
}

// ListBookings returns bookings filtered by status, barber and date,
// newest first, after the lazy completion sweep.
func ListBookings(c *fiber.Ctx) error {
	scope, err := scopedBarberID(c)
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}

	query := db.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("appointment_date = ?", date)
	}
	if scope != nil {
		query = query.Where("barber_id = ?", *scope)
	}

	var bookings []models.Booking
	if err := query.Order("appointment_date DESC, appointment_time DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(completeDue(bookings, Now()))
}

// GetBooking returns one booking, lazily completing it when due.
func GetBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return controllers.RenderBookingError(c, models.ErrNotFound)
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch booking",
			Error:   err.Error(),
		})
	}

	now := Now()
	if booking.Due(now) {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			_, err := booking.CompleteIfDue(tx, now)
			return err
		})
		if err != nil {
			log.Printf("Failed to complete booking %d: %v", booking.ID, err)
		}
	}

	return c.JSON(booking)
}

// CreateBooking is the administrative admission path: no device quota,
// and the human-entered barber reference must resolve to a known
// barber before the slot claim. The claim itself is identical to the
// public path.
func CreateBooking(c *fiber.Ctx) error {
	var req controllers.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	barberID, err := req.ValidateSlot()
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}

	barber, err := models.FindBarber(db.DB, barberID)
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}
	req.BarberName = barber.Name
	req.DeviceToken = ""

	booking, err := req.Insert(barberID)
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}

	go controllers.NotifyCreated(booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      booking.ID,
		"message": "Success",
	})
}

type statusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatus applies an explicit status change with its
// ledger side effects in one transaction. Reviving a cancelled booking
// whose slot has since been taken fails with the slot conflict.
func UpdateBookingStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return controllers.RenderBookingError(c, models.ErrNotFound)
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch booking",
			Error:   err.Error(),
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, req.Status)
	})
	if err != nil {
		if models.IsUniqueViolation(err) {
			return controllers.RenderBookingError(c, models.ErrSlotTaken)
		}
		if errors.Is(err, models.ErrBookingModified) {
			return controllers.RenderBookingError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update status",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Success"})
}

// DeleteBooking removes a booking; completed bookings keep their
// ledger entry.
func DeleteBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return controllers.RenderBookingError(c, models.ErrNotFound)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return models.DeleteBooking(tx, uint(id))
	})
	if err != nil {
		return controllers.RenderBookingError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

// SendReminder manually triggers the customer reminder mail.
func SendReminder(c *fiber.Ctx) error {
	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return controllers.RenderBookingError(c, models.ErrNotFound)
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch booking",
			Error:   err.Error(),
		})
	}
	if booking.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Booking has no customer email",
		})
	}

	err := utils.SendReminder(utils.BookingEmail{
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		BarberName:      booking.BarberName,
		ServiceName:     booking.ServiceName,
		AppointmentDate: booking.AppointmentDate,
		AppointmentTime: booking.AppointmentTime,
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Failed to send reminder",
			Error:   err.Error(),
		})
	}

	db.DB.Model(&booking).Updates(map[string]interface{}{"reminder_sent": true})

	return c.JSON(fiber.Map{"message": "Reminder sent"})
}
