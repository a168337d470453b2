package booking

import (
	"testing"

	"ouiimi/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  models.BookingStatus
		to    models.BookingStatus
		actor Actor
		want  bool
	}{
		{"gateway confirms pending", models.BookingPending, models.BookingConfirmed, ActorGateway, true},
		{"customer cannot confirm", models.BookingPending, models.BookingConfirmed, ActorCustomer, false},
		{"customer cancels pending", models.BookingPending, models.BookingCancelled, ActorCustomer, true},
		{"customer cancels confirmed", models.BookingConfirmed, models.BookingCancelled, ActorCustomer, true},
		{"business cancels confirmed", models.BookingConfirmed, models.BookingCancelled, ActorBusiness, true},
		{"system completes confirmed", models.BookingConfirmed, models.BookingCompleted, ActorSystem, true},
		{"system cannot complete pending", models.BookingPending, models.BookingCompleted, ActorSystem, false},
		{"cancelled is terminal", models.BookingCancelled, models.BookingConfirmed, ActorGateway, false},
		{"completed is terminal", models.BookingCompleted, models.BookingCancelled, ActorCustomer, false},
		{"no self transition", models.BookingConfirmed, models.BookingConfirmed, ActorGateway, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanTransition(c.from, c.to, c.actor); got != c.want {
				t.Errorf("CanTransition(%s, %s, %s) = %v, want %v", c.from, c.to, c.actor, got, c.want)
			}
		})
	}
}
