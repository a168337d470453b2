package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ouiimi/database"
	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds the
// services collection as well so booking creation can claim the originating
// slot inside one transaction.
type MongoBookingRepo struct {
	coll        *mongo.Collection
	serviceColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoBookingRepo{
		coll:        db.Collection("bookings"),
		serviceColl: db.Collection("services"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "payment_intent_id", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "admin_payment_status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) findOne(filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// GetByID retrieves a booking by its unique ID; nil when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByPaymentIntentID retrieves the booking correlated with a gateway payment
// intent; nil when absent.
func (r *MongoBookingRepo) GetByPaymentIntentID(paymentIntentID string) (*models.Booking, error) {
	return r.findOne(bson.M{"payment_intent_id": paymentIntentID})
}

func (r *MongoBookingRepo) findMany(filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByUserID retrieves a customer's bookings, most recent first.
func (r *MongoBookingRepo) GetByUserID(userID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"user_id": userID}, bson.D{{Key: "created_at", Value: -1}})
}

// GetByBusinessID retrieves a business's bookings, most recent first.
func (r *MongoBookingRepo) GetByBusinessID(businessID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"business_id": businessID}, bson.D{{Key: "created_at", Value: -1}})
}

// SetPaymentRefs persists the gateway session/intent identifiers.
func (r *MongoBookingRepo) SetPaymentRefs(id, paymentIntentID, checkoutSessionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment_intent_id":   paymentIntentID,
		"checkout_session_id": checkoutSessionID,
		"updated_at":          time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set payment refs on booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
