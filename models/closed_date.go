package models

import (
	"errors"

	"gorm.io/gorm"
)

// ClosedDate is an inclusive date range during which no slot may be
// booked. BarberID scopes the closure to one barber; nil closes the
// whole shop.
type ClosedDate struct {
	gorm.Model
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
	BarberID  *uint  `json:"barber_id"`
	CreatedBy string `json:"created_by"`
}

// Overlaps reports whether two closures collide: their date ranges
// intersect and their scopes intersect. A global closure intersects
// every scope; closures for two different barbers never do.
func (c ClosedDate) Overlaps(other ClosedDate) bool {
	if c.StartDate > other.EndDate || c.EndDate < other.StartDate {
		return false
	}
	return scopesIntersect(c.BarberID, other.BarberID)
}

func scopesIntersect(a, b *uint) bool {
	if a == nil || b == nil {
		return true
	}
	return *a == *b
}

// DisplayReason is the reason shown to callers; a closure stored
// without one falls back to a generic label.
func (c ClosedDate) DisplayReason() string {
	if c.Reason == "" {
		return "Closed"
	}
	return c.Reason
}

// IsClosed reports whether date falls inside any closure that applies
// to the barber, along with the closure's reason.
func IsClosed(dbc *gorm.DB, barberID uint, date string) (bool, string, error) {
	var closed ClosedDate
	err := dbc.Where("start_date <= ? AND end_date >= ?", date, date).
		Where("barber_id IS NULL OR barber_id = ?", barberID).
		First(&closed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, closed.DisplayReason(), nil
}

// CreateClosedDate validates and stores a new closure. It fails with
// ErrInvalidRange when the range is inverted and with
// OverlapConflictError carrying the colliding rows when an existing
// closure of intersecting scope covers any of the same dates.
func CreateClosedDate(dbc *gorm.DB, closure *ClosedDate) error {
	if closure.StartDate > closure.EndDate {
		return ErrInvalidRange
	}
	var existing []ClosedDate
	query := dbc.Where("start_date <= ? AND end_date >= ?", closure.EndDate, closure.StartDate)
	if closure.BarberID != nil {
		query = query.Where("barber_id IS NULL OR barber_id = ?", *closure.BarberID)
	}
	if err := query.Find(&existing).Error; err != nil {
		return err
	}
	if len(existing) > 0 {
		return &OverlapConflictError{Ranges: existing}
	}
	return dbc.Create(closure).Error
}

// DeleteClosedDate removes a closure by id, failing with ErrNotFound
// when it does not exist.
func DeleteClosedDate(dbc *gorm.DB, id uint) error {
	result := dbc.Delete(&ClosedDate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
