package booking

import (
	"errors"
	"testing"

	"ouiimi/models"
)

// A retried cancel must present the same idempotency key to the gateway, and
// keys for different bookings must never collide.
func TestRefundIdempotencyKey(t *testing.T) {
	if refundIdempotencyKey("bk-1") != refundIdempotencyKey("bk-1") {
		t.Error("key is not stable across retries")
	}
	if refundIdempotencyKey("bk-1") == refundIdempotencyKey("bk-2") {
		t.Error("distinct bookings share a refund key")
	}
}

func TestCancellingActor(t *testing.T) {
	svc := &DefaultBookingService{
		BusinessRepo: &fakeBizRepo{business: &models.Business{ID: "biz-1", OwnerID: "owner-1"}},
	}
	b := &models.Booking{ID: "bk-1", UserID: "user-1", BusinessID: "biz-1"}

	actor, err := svc.cancellingActor(b, "user-1")
	if err != nil || actor != ActorCustomer {
		t.Errorf("booking owner: got (%v, %v), want customer", actor, err)
	}

	actor, err = svc.cancellingActor(b, "owner-1")
	if err != nil || actor != ActorBusiness {
		t.Errorf("business owner: got (%v, %v), want business", actor, err)
	}

	_, err = svc.cancellingActor(b, "stranger")
	var fe *ForbiddenError
	if !errors.As(err, &fe) {
		t.Errorf("stranger: expected ForbiddenError, got %v", err)
	}
}
