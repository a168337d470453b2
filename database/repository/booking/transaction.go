package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when the requested slot is already booked.
var ErrSlotTaken = fmt.Errorf("time slot is no longer available")

// CreateWithSlotClaim inserts the booking and marks the originating service
// slot booked in a single transaction. The slot update filter requires
// is_booked=false, so two concurrent creations against the same slot cannot
// both commit.
func (r *MongoBookingRepo) CreateWithSlotClaim(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		filter := bson.M{
			"id": booking.ServiceID,
			"time_slots": bson.M{
				"$elemMatch": bson.M{
					"date":       booking.TimeSlot.Date,
					"start_time": booking.TimeSlot.StartTime,
					"is_booked":  false,
				},
			},
		}
		update := bson.M{"$set": bson.M{
			"time_slots.$.is_booked": true,
			"updated_at":             now,
		}}

		res, err := r.serviceColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("claim slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotTaken
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
