package businessRepo

import (
	"fmt"
	"time"

	"ouiimi/database"
	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("staff")
	repo := &MongoStaffRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetByID retrieves a staff member by ID; nil when absent.
func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetByBusinessID retrieves a business's staff, optionally only active members.
func (r *MongoStaffRepo) GetByBusinessID(businessID string, activeOnly bool) ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	for cursor.Next(ctx) {
		var s models.Staff
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode staff: %w", err)
		}
		staff = append(staff, s)
	}
	return staff, nil
}

// Create inserts a new staff document.
func (r *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, staff)
	if err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a raw update document to a staff record.
func (r *MongoStaffRepo) UpdateWithDocument(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

// SetActive flips the soft-deactivation flag.
func (r *MongoStaffRepo) SetActive(id string, active bool) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now(),
	}})
}
