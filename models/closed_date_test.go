package models

import "testing"

func uintPtr(v uint) *uint { return &v }

func TestClosedDate_DisplayReason(t *testing.T) {
	if got := (ClosedDate{Reason: "Bayram"}).DisplayReason(); got != "Bayram" {
		t.Fatalf("DisplayReason = %q, want %q", got, "Bayram")
	}
	if got := (ClosedDate{}).DisplayReason(); got != "Closed" {
		t.Fatalf("DisplayReason for empty reason = %q, want %q", got, "Closed")
	}
}

func TestIsClosed_ReasonFallback(t *testing.T) {
	dbc := newTestDB(t)
	if err := dbc.Create(&ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-02"}).Error; err != nil {
		t.Fatalf("create closure: %v", err)
	}

	closed, reason, err := IsClosed(dbc, 1, "2025-07-01")
	if err != nil {
		t.Fatalf("IsClosed: %v", err)
	}
	if !closed || reason != "Closed" {
		t.Fatalf("closed = %v reason = %q, want true %q", closed, reason, "Closed")
	}

	closed, reason, err = IsClosed(dbc, 1, "2025-07-03")
	if err != nil {
		t.Fatalf("IsClosed: %v", err)
	}
	if closed || reason != "" {
		t.Fatalf("closed = %v reason = %q, want open day", closed, reason)
	}
}

func TestClosedDate_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b ClosedDate
		want bool
	}{
		{
			name: "same global range",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05"},
			b:    ClosedDate{StartDate: "2025-07-03", EndDate: "2025-07-10"},
			want: true,
		},
		{
			name: "touching endpoints overlap",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05"},
			b:    ClosedDate{StartDate: "2025-07-05", EndDate: "2025-07-08"},
			want: true,
		},
		{
			name: "disjoint dates",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05"},
			b:    ClosedDate{StartDate: "2025-07-06", EndDate: "2025-07-08"},
			want: false,
		},
		{
			name: "global intersects barber scope",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05"},
			b:    ClosedDate{StartDate: "2025-07-02", EndDate: "2025-07-03", BarberID: uintPtr(1)},
			want: true,
		},
		{
			name: "same barber scope",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05", BarberID: uintPtr(2)},
			b:    ClosedDate{StartDate: "2025-07-02", EndDate: "2025-07-03", BarberID: uintPtr(2)},
			want: true,
		},
		{
			name: "different barbers never conflict",
			a:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05", BarberID: uintPtr(1)},
			b:    ClosedDate{StartDate: "2025-07-01", EndDate: "2025-07-05", BarberID: uintPtr(2)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Fatalf("Overlaps not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}
