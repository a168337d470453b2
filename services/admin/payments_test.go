package admin

import (
	"testing"
	"time"

	"ouiimi/models"
)

func TestSlotElapsed(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		slot models.TimeSlot
		want bool
	}{
		{
			name: "slot ended earlier today",
			slot: models.TimeSlot{Date: "2026-03-15", StartTime: "10:00", EndTime: "11:00"},
			want: true,
		},
		{
			name: "slot ends exactly now",
			slot: models.TimeSlot{Date: "2026-03-15", StartTime: "13:00", EndTime: "14:00"},
			want: true,
		},
		{
			name: "slot still in progress",
			slot: models.TimeSlot{Date: "2026-03-15", StartTime: "13:30", EndTime: "14:30"},
			want: false,
		},
		{
			name: "slot later today",
			slot: models.TimeSlot{Date: "2026-03-15", StartTime: "16:00", EndTime: "17:00"},
			want: false,
		},
		{
			name: "slot yesterday",
			slot: models.TimeSlot{Date: "2026-03-14", StartTime: "16:00", EndTime: "17:00"},
			want: true,
		},
		{
			name: "slot tomorrow",
			slot: models.TimeSlot{Date: "2026-03-16", StartTime: "09:00", EndTime: "10:00"},
			want: false,
		},
		{
			name: "malformed end time on a past date",
			slot: models.TimeSlot{Date: "2026-03-14", StartTime: "16:00", EndTime: "bad"},
			want: true,
		},
		{
			name: "malformed end time today",
			slot: models.TimeSlot{Date: "2026-03-15", StartTime: "10:00", EndTime: "bad"},
			want: false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := slotElapsed(c.slot, now); got != c.want {
				t.Errorf("slotElapsed(%+v) = %v, want %v", c.slot, got, c.want)
			}
		})
	}
}
