package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// Now is the clock for the sweeps; tests swap it out.
var Now = time.Now

const retentionDays = 14

// StartCronJobs initializes and starts the background sweeps.
func StartCronJobs() {
	c := cron.New()

	// Reminders for appointments starting within the next hour.
	if _, err := c.AddFunc("* * * * *", sendAppointmentReminders); err != nil {
		log.Fatalf("Failed to add reminder job: %v", err)
	}
	// Punctual completion of past confirmed bookings; listing them
	// also completes lazily, this keeps reporting fresh in between.
	if _, err := c.AddFunc("*/5 * * * *", completeDueBookings); err != nil {
		log.Fatalf("Failed to add completion sweep: %v", err)
	}
	// Retention cleanup of stale bookings; ledger entries survive.
	if _, err := c.AddFunc("0 4 * * *", cleanupOldBookings); err != nil {
		log.Fatalf("Failed to add cleanup job: %v", err)
	}

	c.Start()
	log.Println("Cron scheduler started")
}

// completeDueBookings finishes confirmed bookings whose appointment
// moment has passed, recording their revenue.
func completeDueBookings() {
	now := Now()
	today := now.In(utils.Location()).Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.Where("status = ? AND appointment_date <= ?", models.StatusConfirmed, today).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Completion sweep query failed: %v", err)
		return
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.Due(now) {
			continue
		}
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			_, err := b.CompleteIfDue(tx, now)
			return err
		})
		if err != nil {
			log.Printf("Failed to complete booking %d: %v", b.ID, err)
		}
	}
}

// sendAppointmentReminders mails customers whose confirmed appointment
// starts within the next hour and who have not been reminded yet.
func sendAppointmentReminders() {
	now := Now()
	local := now.In(utils.Location())
	// The window can straddle midnight, so look at today and tomorrow.
	dates := []string{
		local.Format("2006-01-02"),
		local.AddDate(0, 0, 1).Format("2006-01-02"),
	}

	var bookings []models.Booking
	err := db.DB.Where("status = ? AND reminder_sent = ? AND appointment_date IN ?",
		models.StatusConfirmed, false, dates).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Reminder query failed: %v", err)
		return
	}

	for i := range bookings {
		b := &bookings[i]
		if b.CustomerEmail == "" {
			continue
		}
		at, err := b.AppointmentInstant()
		if err != nil {
			continue
		}
		until := at.Sub(now)
		if until <= 0 || until > time.Hour {
			continue
		}

		err = utils.SendReminder(utils.BookingEmail{
			CustomerName:    b.CustomerName,
			CustomerEmail:   b.CustomerEmail,
			BarberName:      b.BarberName,
			ServiceName:     b.ServiceName,
			AppointmentDate: b.AppointmentDate,
			AppointmentTime: b.AppointmentTime,
		})
		if err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", b.ID, err)
			continue
		}
		if err := db.DB.Model(b).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder for booking %d: %v", b.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", b.ID, b.CustomerEmail)
	}
}

// cleanupOldBookings drops bookings older than the retention window.
// Deletion goes through the lifecycle path, so completed bookings keep
// their ledger entries and the revenue record stays intact.
func cleanupOldBookings() {
	cutoff := Now().In(utils.Location()).AddDate(0, 0, -retentionDays).Format("2006-01-02")

	var ids []uint
	err := db.DB.Model(&models.Booking{}).
		Where("appointment_date < ?", cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		log.Printf("Cleanup query failed: %v", err)
		return
	}

	deleted := 0
	for _, id := range ids {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			return models.DeleteBooking(tx, id)
		})
		if err != nil {
			log.Printf("Failed to clean up booking %d: %v", id, err)
			continue
		}
		deleted++
	}
	if deleted > 0 {
		fmt.Printf("Cleaned up %d old bookings\n", deleted)
	}
}
