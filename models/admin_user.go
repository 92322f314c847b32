package models

import (
	"gorm.io/gorm"
)

type AdminUser struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
	// BarberID scopes the admin to one barber's bookings; nil means
	// the admin manages the whole shop.
	BarberID *uint `json:"barber_id"`
}
