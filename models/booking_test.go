package models

import (
	"testing"
	"time"

	"github.com/barberbook/booking-api/utils"
)

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []BookingStatus{"", "done", "CONFIRMED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestBooking_Due(t *testing.T) {
	loc := utils.Location()
	before := time.Date(2025, 6, 10, 9, 59, 0, 0, loc)
	after := time.Date(2025, 6, 10, 10, 1, 0, 0, loc)
	exactly := time.Date(2025, 6, 10, 10, 0, 0, 0, loc)

	tests := []struct {
		name    string
		booking Booking
		now     time.Time
		want    bool
	}{
		{
			name:    "confirmed and past",
			booking: Booking{Status: StatusConfirmed, AppointmentDate: "2025-06-10", AppointmentTime: "10:00"},
			now:     after,
			want:    true,
		},
		{
			name:    "confirmed at the exact moment",
			booking: Booking{Status: StatusConfirmed, AppointmentDate: "2025-06-10", AppointmentTime: "10:00"},
			now:     exactly,
			want:    true,
		},
		{
			name:    "confirmed but not yet due",
			booking: Booking{Status: StatusConfirmed, AppointmentDate: "2025-06-10", AppointmentTime: "10:00"},
			now:     before,
			want:    false,
		},
		{
			name:    "completed never due again",
			booking: Booking{Status: StatusCompleted, AppointmentDate: "2025-06-10", AppointmentTime: "10:00"},
			now:     after,
			want:    false,
		},
		{
			name:    "cancelled never due",
			booking: Booking{Status: StatusCancelled, AppointmentDate: "2025-06-10", AppointmentTime: "10:00"},
			now:     after,
			want:    false,
		},
		{
			name:    "unparseable label never due",
			booking: Booking{Status: StatusConfirmed, AppointmentDate: "2025-06-10", AppointmentTime: "soon"},
			now:     after,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.Due(tt.now); got != tt.want {
				t.Fatalf("Due = %v, want %v", got, tt.want)
			}
		})
	}
}
