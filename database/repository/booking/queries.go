package bookingRepo

import (
	"fmt"
	"time"

	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notReleasedFilter matches bookings whose admin payment status is pending,
// empty, or absent. Older records may predate the field.
func notReleasedFilter() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"admin_payment_status": models.AdminPaymentPending},
		bson.M{"admin_payment_status": ""},
		bson.M{"admin_payment_status": bson.M{"$exists": false}},
	}}
}

// releasableStatusFilter matches bookings whose business share can still be
// paid out. Completed counts alongside confirmed: the background worker flips
// confirmed -> completed the moment the slot elapses, which is exactly when a
// booking first becomes eligible for release.
func releasableStatusFilter() bson.M {
	return bson.M{"status": bson.M{"$in": bson.A{models.BookingConfirmed, models.BookingCompleted}}}
}

// ConfirmDeposit transitions pending/unpaid -> confirmed/deposit_paid for the
// booking holding the given payment intent. The bool result is true only when
// this call performed the transition.
func (r *MongoBookingRepo) ConfirmDeposit(paymentIntentID string) (*models.Booking, bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"payment_intent_id": paymentIntentID,
		"status":            models.BookingPending,
	}
	update := bson.M{"$set": bson.M{
		"status":         models.BookingConfirmed,
		"payment_status": models.PaymentDepositPaid,
		"updated_at":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == nil {
		return &booking, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, fmt.Errorf("failed to confirm deposit for intent %s: %w", paymentIntentID, err)
	}

	// No pending booking matched: either it does not exist, or another caller
	// (webhook vs. synchronous confirm) already moved it to confirmed.
	existing, err := r.GetByPaymentIntentID(paymentIntentID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Cancel transitions a pending or confirmed booking to cancelled with the
// given payment status. Returns nil when the booking was not cancellable.
func (r *MongoBookingRepo) Cancel(id string, paymentStatus models.PaymentStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": bson.A{models.BookingPending, models.BookingConfirmed}},
	}
	update := bson.M{"$set": bson.M{
		"status":         models.BookingCancelled,
		"payment_status": paymentStatus,
		"updated_at":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	return &booking, nil
}

// Complete transitions confirmed -> completed. No-op when not confirmed.
func (r *MongoBookingRepo) Complete(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingConfirmed}
	update := bson.M{"$set": bson.M{
		"status":     models.BookingCompleted,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete booking %s: %w", id, err)
	}
	return &booking, nil
}

// PendingRelease returns confirmed or completed bookings not yet released
// whose slot date is on or before maxDate ("YYYY-MM-DD" sorts
// lexicographically), most recent first, tie-broken by start time descending.
// The caller applies the exact end-time cutoff since "elapsed" depends on the
// current clock.
func (r *MongoBookingRepo) PendingRelease(maxDate string) ([]models.Booking, error) {
	filter := bson.M{
		"time_slot.date": bson.M{"$lte": maxDate},
	}
	for k, v := range releasableStatusFilter() {
		filter[k] = v
	}
	for k, v := range notReleasedFilter() {
		filter[k] = v
	}

	sort := bson.D{
		{Key: "time_slot.date", Value: -1},
		{Key: "time_slot.start_time", Value: -1},
	}
	return r.findMany(filter, sort)
}

// Release flips adminPaymentStatus to released. The bool result is true only
// when this call performed the flip; a second release is a no-op.
func (r *MongoBookingRepo) Release(id string) (*models.Booking, bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id}
	for k, v := range releasableStatusFilter() {
		filter[k] = v
	}
	for k, v := range notReleasedFilter() {
		filter[k] = v
	}
	update := bson.M{"$set": bson.M{
		"admin_payment_status": models.AdminPaymentReleased,
		"released_at":          now,
		"updated_at":           now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == nil {
		return &booking, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, fmt.Errorf("failed to release booking %s: %w", id, err)
	}

	existing, err := r.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
