package models

import (
	"errors"
	"testing"
)

func TestParseBarberID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"2", 2, false},
		{" 2 ", 2, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"first", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBarberID(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBarber) {
				t.Errorf("ParseBarberID(%q) err = %v, want ErrUnknownBarber", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBarberID(%q) = (%d, %v), want %d", tt.raw, got, err, tt.want)
		}
	}
}
