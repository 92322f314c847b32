package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2025-06-10", false},
		{"2025-13-01", true},
		{"10-06-2025", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseDate(tt.date)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) err = %v, wantErr %v", tt.date, err, tt.wantErr)
		}
	}
}

func TestAppointmentInstant(t *testing.T) {
	got, err := AppointmentInstant("2025-06-10", " 10:00 ")
	if err != nil {
		t.Fatalf("AppointmentInstant: %v", err)
	}
	want := time.Date(2025, 6, 10, 10, 0, 0, 0, Location())
	if !got.Equal(want) {
		t.Fatalf("AppointmentInstant = %v, want %v", got, want)
	}
}

func TestAppointmentInstant_Invalid(t *testing.T) {
	if _, err := AppointmentInstant("2025-06-10", "25:00"); err == nil {
		t.Fatal("expected error for out-of-range time label")
	}
}
