package utils

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	locationOnce sync.Once
	location     *time.Location
)

// Location is the shop's wall-clock zone, from BOOKING_TZ (default
// Europe/Istanbul). Appointment dates and time labels are wall-clock
// strings; this zone anchors them to instants.
func Location() *time.Location {
	locationOnce.Do(func() {
		name := os.Getenv("BOOKING_TZ")
		if name == "" {
			name = "Europe/Istanbul"
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			loc = time.UTC
		}
		location = loc
	})
	return location
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return t, nil
}

// AppointmentInstant converts a (date, time label) pair to the moment
// the appointment starts, in the shop's zone.
func AppointmentInstant(date, slot string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+NormalizeSlot(slot), Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment %q %q", date, slot)
	}
	return t, nil
}
