package controllers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/quota"
	"github.com/barberbook/booking-api/utils"
)

// DeviceQuota is wired in main before the routes are served.
var DeviceQuota *quota.Tracker

// BookingRequest is the public booking payload. BarberID is a
// json.Number so numeric and string references both land in
// ParseBarberID, the single normalization point.
type BookingRequest struct {
	BarberID        json.Number `json:"barberId"`
	BarberName      string      `json:"barberName"`
	ServiceName     string      `json:"serviceName"`
	ServicePrice    float64     `json:"servicePrice"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	AppointmentDate string      `json:"appointmentDate"`
	AppointmentTime string      `json:"appointmentTime"`
	DeviceToken     string      `json:"deviceToken"`
}

// MissingFields lists the required fields absent from the request.
func (r *BookingRequest) MissingFields() []string {
	var missing []string
	if r.BarberID.String() == "" {
		missing = append(missing, "barberId")
	}
	if r.ServiceName == "" {
		missing = append(missing, "serviceName")
	}
	if r.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if r.CustomerPhone == "" {
		missing = append(missing, "customerPhone")
	}
	if r.AppointmentDate == "" {
		missing = append(missing, "appointmentDate")
	}
	if r.AppointmentTime == "" {
		missing = append(missing, "appointmentTime")
	}
	return missing
}

// ValidateSlot runs the request checks shared by the public and admin
// paths: field presence, barber normalization, date validity, break
// slot, closure. The returned errors carry enough structure for a
// specific message.
func (r *BookingRequest) ValidateSlot() (uint, error) {
	if missing := r.MissingFields(); len(missing) > 0 {
		return 0, &models.MissingFieldsError{Fields: missing}
	}
	barberID, err := models.ParseBarberID(r.BarberID.String())
	if err != nil {
		return 0, err
	}
	if _, err := utils.ParseDate(r.AppointmentDate); err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	slot := utils.NormalizeSlot(r.AppointmentTime)
	if utils.IsBreakSlot(slot) {
		return 0, models.ErrSlotBlocked
	}
	closed, reason, err := models.IsClosed(db.DB, barberID, r.AppointmentDate)
	if err != nil {
		return 0, models.ErrStoreUnavailable
	}
	if closed {
		return 0, &models.DateClosedError{Reason: reason}
	}
	return barberID, nil
}

// Insert claims the slot. The partial unique index on
// (barber_id, appointment_date, appointment_time) is the atomicity
// point: of N concurrent identical requests exactly one insert
// succeeds, the rest fail with ErrSlotTaken.
func (r *BookingRequest) Insert(barberID uint) (*models.Booking, error) {
	booking := models.Booking{
		BarberID:        barberID,
		BarberName:      r.BarberName,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: utils.NormalizeSlot(r.AppointmentTime),
		DeviceToken:     r.DeviceToken,
		Status:          models.StatusConfirmed,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		if models.IsUniqueViolation(err) {
			return nil, models.ErrSlotTaken
		}
		return nil, err
	}
	return &booking, nil
}

// NotifyCreated sends the confirmation mails. Strictly downstream of
// the commit: failures are logged, never rolled back into the booking.
func NotifyCreated(booking *models.Booking) {
	mail := utils.BookingEmail{
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		BarberName:      booking.BarberName,
		ServiceName:     booking.ServiceName,
		AppointmentDate: booking.AppointmentDate,
		AppointmentTime: booking.AppointmentTime,
	}
	if mail.CustomerEmail != "" {
		if err := utils.SendCustomerConfirmation(mail); err != nil {
			log.Printf("Failed to send confirmation for booking %d: %v", booking.ID, err)
		}
	}
	if err := utils.SendOperatorNotification(mail); err != nil {
		log.Printf("Failed to send operator notification for booking %d: %v", booking.ID, err)
	}
}

// CreateBooking is the public admission path.
func CreateBooking(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	barberID, err := req.ValidateSlot()
	if err != nil {
		return RenderBookingError(c, err)
	}

	// Quota is checked before admission but only consumed after the
	// booking commits, so a rejected request never burns quota.
	if req.DeviceToken != "" {
		decision, err := DeviceQuota.Check(c.Context(), req.DeviceToken)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Message: "Booking service temporarily unavailable",
				Error:   err.Error(),
			})
		}
		if !decision.Allowed {
			return RenderBookingError(c, &models.QuotaExceededError{RetryAfter: decision.RetryAfter})
		}
	}

	booking, err := req.Insert(barberID)
	if err != nil {
		return RenderBookingError(c, err)
	}

	if req.DeviceToken != "" {
		if err := DeviceQuota.Record(c.Context(), req.DeviceToken); err != nil {
			log.Printf("Failed to record device quota for booking %d: %v", booking.ID, err)
		}
	}

	go NotifyCreated(booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      booking.ID,
		"message": "Success",
	})
}
