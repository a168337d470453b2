package models

import (
	"testing"
	"time"
)

func TestServiceAmount(t *testing.T) {
	b := &Booking{TotalCost: 250.00, PlatformFee: 1.99}
	if got := b.ServiceAmount(); got != 248.01 {
		t.Errorf("ServiceAmount() = %v, want 248.01", got)
	}
}

func TestTimeSlotParsing(t *testing.T) {
	slot := TimeSlot{Date: "2026-03-15", StartTime: "13:00", EndTime: "14:30"}

	start, err := slot.StartsAt(time.UTC)
	if err != nil {
		t.Fatalf("StartsAt: %v", err)
	}
	if want := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartsAt = %v, want %v", start, want)
	}

	end, err := slot.EndsAt(time.UTC)
	if err != nil {
		t.Fatalf("EndsAt: %v", err)
	}
	if want := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("EndsAt = %v, want %v", end, want)
	}

	bad := TimeSlot{Date: "2026-03-15", StartTime: "25:99"}
	if _, err := bad.StartsAt(time.UTC); err == nil {
		t.Error("expected error for invalid start time")
	}
}
