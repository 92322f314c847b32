package utils

import (
	"strings"
	"time"
)

// Both barbers work the same hourly grid; Saturdays add two late slots.
var (
	baseSlots     = []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00"}
	saturdaySlots = []string{"21:00", "22:00"}
	breakSlots    = map[string]bool{"16:00": true}
)

// NormalizeSlot is the canonical string form of a time label. All
// comparisons against stored booking times go through it.
func NormalizeSlot(slot string) string {
	return strings.TrimSpace(slot)
}

// IsBreakSlot reports whether the label is permanently blocked,
// independent of date and barber.
func IsBreakSlot(slot string) bool {
	return breakSlots[NormalizeSlot(slot)]
}

// SlotsFor returns the ordered bookable labels for a (barber, date).
// The grid depends only on the date's day of week today, but callers
// pass the barber so a per-barber grid stays a local change.
func SlotsFor(barberID uint, date string) []string {
	slots := make([]string, len(baseSlots), len(baseSlots)+len(saturdaySlots))
	copy(slots, baseSlots)

	// Parse the calendar date in UTC so the weekday never shifts with
	// the server's zone.
	day, err := time.Parse("2006-01-02", date)
	if err == nil && day.Weekday() == time.Saturday {
		slots = append(slots, saturdaySlots...)
	}
	return slots
}
