package bookingRepo

import (
	"testing"

	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
)

func releasableStatuses(t *testing.T) []models.BookingStatus {
	t.Helper()
	statusCond, ok := releasableStatusFilter()["status"].(bson.M)
	if !ok {
		t.Fatal("status condition is not a document")
	}
	in, ok := statusCond["$in"].(bson.A)
	if !ok {
		t.Fatal("status condition is not an $in list")
	}
	out := make([]models.BookingStatus, 0, len(in))
	for _, v := range in {
		s, ok := v.(models.BookingStatus)
		if !ok {
			t.Fatalf("status list holds %T, want BookingStatus", v)
		}
		out = append(out, s)
	}
	return out
}

// The worker flips confirmed -> completed at the slot's end, the same instant
// a booking first becomes eligible for payout. A completed booking therefore
// must still match the release filters or the business share could never be
// released on a healthy worker.
func TestReleasableStatusFilterIncludesCompleted(t *testing.T) {
	statuses := releasableStatuses(t)

	want := map[models.BookingStatus]bool{
		models.BookingConfirmed: true,
		models.BookingCompleted: true,
	}
	got := make(map[models.BookingStatus]bool, len(statuses))
	for _, s := range statuses {
		got[s] = true
	}

	for s := range want {
		if !got[s] {
			t.Errorf("release filter excludes %s", s)
		}
	}
	if got[models.BookingPending] || got[models.BookingCancelled] {
		t.Errorf("release filter must not match pending or cancelled, got %v", statuses)
	}
}

func TestNotReleasedFilterCoversAbsentField(t *testing.T) {
	or, ok := notReleasedFilter()["$or"].(bson.A)
	if !ok {
		t.Fatal("expected an $or list")
	}
	if len(or) != 3 {
		t.Fatalf("expected 3 branches (pending, empty, absent), got %d", len(or))
	}

	var hasExists bool
	for _, branch := range or {
		doc, ok := branch.(bson.M)
		if !ok {
			continue
		}
		if cond, ok := doc["admin_payment_status"].(bson.M); ok {
			if _, ok := cond["$exists"]; ok {
				hasExists = true
			}
		}
	}
	if !hasExists {
		t.Error("filter does not match documents that predate admin_payment_status")
	}
}
