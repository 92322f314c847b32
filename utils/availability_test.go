package utils

import (
	"reflect"
	"testing"
)

func TestBuildDaySchedule_EmptyDay(t *testing.T) {
	got := BuildDaySchedule(1, "2025-06-10", nil, false, "")
	want := []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "17:00", "18:00", "19:00", "20:00"}
	if !reflect.DeepEqual(got.AvailableTimes, want) {
		t.Fatalf("available = %v, want all slots except break", got.AvailableTimes)
	}
	if len(got.BookedTimes) != 0 || got.IsClosed {
		t.Fatalf("unexpected booked/closed: %+v", got)
	}
}

func TestBuildDaySchedule_ExcludesBookedAndBreak(t *testing.T) {
	got := BuildDaySchedule(1, "2025-06-10", []string{"11:00"}, false, "")
	for _, slot := range got.AvailableTimes {
		if slot == "11:00" || slot == "16:00" {
			t.Fatalf("available list contains excluded slot %s", slot)
		}
	}
	if !reflect.DeepEqual(got.BookedTimes, []string{"11:00"}) {
		t.Fatalf("booked = %v", got.BookedTimes)
	}
}

func TestBuildDaySchedule_NormalizesStoredLabels(t *testing.T) {
	got := BuildDaySchedule(1, "2025-06-10", []string{" 12:00 "}, false, "")
	for _, slot := range got.AvailableTimes {
		if slot == "12:00" {
			t.Fatal("padded stored label was not matched against the grid")
		}
	}
	if got.BookedTimes[0] != "12:00" {
		t.Fatalf("booked label not normalized: %q", got.BookedTimes[0])
	}
}

func TestBuildDaySchedule_Closed(t *testing.T) {
	got := BuildDaySchedule(1, "2025-06-10", []string{"11:00"}, true, "Holiday")
	if !got.IsClosed || got.Reason != "Holiday" {
		t.Fatalf("closed day not reported: %+v", got)
	}
	if len(got.AvailableTimes) != 0 || len(got.BookedTimes) != 0 {
		t.Fatalf("closed day must resolve to empty lists: %+v", got)
	}
}
