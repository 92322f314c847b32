package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barberbook/booking-api/utils"
)

type BookingStatus string

const (
	// StatusPending is never produced by new code paths; it exists for
	// rows created by migration or external inserts and is swept into
	// confirmed at startup.
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	BarberID        uint          `json:"barber_id" gorm:"index"`
	BarberName      string        `json:"barber_name"`
	ServiceName     string        `json:"service_name"`
	ServicePrice    float64       `json:"service_price"` // snapshot at creation time
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerEmail   string        `json:"customer_email"`
	AppointmentDate string        `json:"appointment_date" gorm:"index"` // YYYY-MM-DD
	AppointmentTime string        `json:"appointment_time"`              // HH:MM
	DeviceToken     string        `json:"device_token,omitempty"`
	Status          BookingStatus `json:"status"`
	ReminderSent    bool          `json:"reminder_sent" gorm:"default:false"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	// Bookings are auto-confirmed; there is no approval step.
	if b.Status == "" {
		b.Status = StatusConfirmed
	}
	b.AppointmentTime = utils.NormalizeSlot(b.AppointmentTime)
	return nil
}

// AppointmentInstant is the wall-clock moment the appointment starts.
func (b *Booking) AppointmentInstant() (time.Time, error) {
	return utils.AppointmentInstant(b.AppointmentDate, b.AppointmentTime)
}

// Due reports whether a confirmed booking's appointment moment has
// passed, i.e. it should move to completed.
func (b *Booking) Due(now time.Time) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	at, err := b.AppointmentInstant()
	if err != nil {
		return false
	}
	return !now.Before(at)
}

// UpdateStatus moves the booking to newStatus and keeps the revenue
// ledger in step, inside the caller's transaction:
//   - entering completed creates the booking's ledger entry unless one
//     already exists (the unique booking_id index makes re-entry a no-op)
//   - leaving completed deletes it
//
// Reviving a cancelled booking can collide with a newer booking on the
// same slot; the partial unique index rejects that and the error
// surfaces as a unique violation.
//
// The write is a compare-and-swap on the status the caller read: if the
// row no longer holds oldStatus, another writer got there first and
// UpdateStatus returns ErrBookingModified without touching the ledger.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !newStatus.Valid() {
		return fmt.Errorf("invalid status %q", newStatus)
	}
	oldStatus := b.Status
	if oldStatus == newStatus {
		return nil
	}
	b.Status = newStatus
	result := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", b.ID, oldStatus).
		Update("status", newStatus)
	if result.Error != nil {
		b.Status = oldStatus
		return result.Error
	}
	if result.RowsAffected == 0 {
		b.Status = oldStatus
		return ErrBookingModified
	}
	if newStatus == StatusCompleted {
		return ensureRevenueEntry(tx, b)
	}
	if oldStatus == StatusCompleted {
		return tx.Where("booking_id = ?", b.ID).Delete(&RevenueHistory{}).Error
	}
	return nil
}

// CompleteIfDue lazily finishes a confirmed booking whose time has
// passed. Returns true when a transition happened. Losing the
// compare-and-swap to a concurrent writer is not an error here; the
// booking simply isn't ours to complete anymore.
func (b *Booking) CompleteIfDue(tx *gorm.DB, now time.Time) (bool, error) {
	if !b.Due(now) {
		return false, nil
	}
	if err := b.UpdateStatus(tx, StatusCompleted); err != nil {
		if errors.Is(err, ErrBookingModified) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteBooking removes a booking. Completed bookings keep their ledger
// entry (the ledger is the durable revenue record); for any other
// status, ledger rows referencing the booking are removed as well.
func DeleteBooking(tx *gorm.DB, id uint) error {
	var booking Booking
	if err := tx.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if booking.Status != StatusCompleted {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&RevenueHistory{}).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&booking).Error
}
