package models

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type Barber struct {
	gorm.Model
	BarberID   uint   `json:"barber_id" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Experience string `json:"experience"`
	Specialty  string `json:"specialty"`
	ImageURL   string `json:"image_url"`
	Active     bool   `json:"active" gorm:"default:true"`
}

// ParseBarberID normalizes a client-supplied barber reference to the
// canonical numeric id. Every boundary goes through here; nothing else
// in the engine compares barber ids in any other form.
func ParseBarberID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, ErrUnknownBarber
	}
	return uint(n), nil
}

// FindBarber resolves a canonical barber id to its record, failing with
// ErrUnknownBarber rather than defaulting to anyone.
func FindBarber(dbc *gorm.DB, barberID uint) (*Barber, error) {
	var barber Barber
	err := dbc.Where("barber_id = ? AND active = ?", barberID, true).First(&barber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownBarber
	}
	if err != nil {
		return nil, err
	}
	return &barber, nil
}
