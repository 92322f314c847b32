package utils

// DaySchedule is the bookable/blocked partition for one (barber, date).
type DaySchedule struct {
	AvailableTimes []string `json:"availableTimes"`
	BookedTimes    []string `json:"bookedTimes"`
	IsClosed       bool     `json:"isClosed"`
	Reason         string   `json:"reason,omitempty"`
}

// MaxBatchDates caps how many dates one batch availability request may
// resolve.
const MaxBatchDates = 14

// BuildDaySchedule partitions the slot grid for one day given the time
// labels of non-cancelled bookings already on file. Closed days resolve
// to empty lists with the closure reason attached.
func BuildDaySchedule(barberID uint, date string, bookedTimes []string, closed bool, reason string) DaySchedule {
	if closed {
		return DaySchedule{
			AvailableTimes: []string{},
			BookedTimes:    []string{},
			IsClosed:       true,
			Reason:         reason,
		}
	}

	booked := make(map[string]bool, len(bookedTimes))
	normalized := make([]string, 0, len(bookedTimes))
	for _, t := range bookedTimes {
		label := NormalizeSlot(t)
		booked[label] = true
		normalized = append(normalized, label)
	}

	available := []string{}
	for _, slot := range SlotsFor(barberID, date) {
		if IsBreakSlot(slot) || booked[slot] {
			continue
		}
		available = append(available, slot)
	}
	return DaySchedule{AvailableTimes: available, BookedTimes: normalized}
}
