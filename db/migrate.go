package db

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/barberbook/booking-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.AdminUser{},
		&models.Booking{},
		&models.ClosedDate{},
		&models.RevenueHistory{},
		&models.SystemSetting{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// The slot claim relies on this partial unique index: at most one
	// live (non-cancelled) booking per (barber, date, time). Concurrent
	// inserts lose with a unique violation, never a double booking.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_claim
		ON bookings (barber_id, appointment_date, appointment_time)
		WHERE status <> 'cancelled' AND deleted_at IS NULL
	`).Error; err != nil {
		log.Fatal("Failed to create slot claim index: ", err)
	}

	// At most one ledger entry per booking.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_revenue_booking
		ON revenue_histories (booking_id)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		log.Fatal("Failed to create revenue index: ", err)
	}

	// Legacy pending rows come only from migrated or external data;
	// sweep them into confirmed so the lifecycle starts clean.
	result := DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusPending).
		Update("status", models.StatusConfirmed)
	if result.Error != nil {
		log.Fatal("Failed to auto-confirm pending bookings: ", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("Auto-confirmed %d pending bookings", result.RowsAffected)
	}

	seedDefaults()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedDefaults() {
	var barberCount int64
	DB.Model(&models.Barber{}).Count(&barberCount)
	if barberCount == 0 {
		barbers := []models.Barber{
			{BarberID: 1, Name: "Yasin", Experience: "15+ years", Specialty: "Classic & modern cuts", Active: true},
			{BarberID: 2, Name: "Emir", Experience: "10+ years", Specialty: "Fades & beard design", Active: true},
		}
		for _, barber := range barbers {
			DB.Create(&barber)
		}
		log.Println("Seeded default barbers")
	}

	var serviceCount int64
	DB.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Haircut", Duration: 45, Price: 700, Active: true},
			{Name: "Beard Trim", Duration: 30, Price: 400, Active: true},
			{Name: "Haircut + Beard", Duration: 60, Price: 1000, Active: true},
			{Name: "Kids Haircut", Duration: 30, Price: 500, Active: true},
		}
		for _, service := range services {
			DB.Create(&service)
		}
		log.Println("Seeded default services")
	}

	var adminCount int64
	DB.Model(&models.AdminUser{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash default admin password: ", err)
		}
		DB.Create(&models.AdminUser{Username: "admin", Password: string(hash)})
		log.Println("Seeded default admin user (change the password)")
	}
}
