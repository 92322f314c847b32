package controllers

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBookingRequest_MissingFields(t *testing.T) {
	full := BookingRequest{
		BarberID:        json.Number("1"),
		ServiceName:     "Haircut",
		CustomerName:    "Ada",
		CustomerPhone:   "5551234",
		AppointmentDate: "2025-06-10",
		AppointmentTime: "11:00",
	}
	if missing := full.MissingFields(); len(missing) != 0 {
		t.Fatalf("complete request reported missing fields: %v", missing)
	}

	var empty BookingRequest
	want := []string{"barberId", "serviceName", "customerName", "customerPhone", "appointmentDate", "appointmentTime"}
	if got := empty.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingFields = %v, want %v", got, want)
	}

	noPhone := full
	noPhone.CustomerPhone = ""
	if got := noPhone.MissingFields(); !reflect.DeepEqual(got, []string{"customerPhone"}) {
		t.Fatalf("MissingFields = %v, want [customerPhone]", got)
	}
}
