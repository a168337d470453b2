package forgetpassRepo

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

// ForgetPassRepository stores single-use password reset tokens.
type ForgetPassRepository interface {
	Create(fp *models.ForgetPass) error
	GetByToken(token string) (*models.ForgetPass, error)
	DeleteByUserID(userID string) error
}

// MongoForgetPassRepo implements ForgetPassRepository using MongoDB.
type MongoForgetPassRepo struct {
	coll *mongo.Collection
}

// NewMongoForgetPassRepo creates a new instance of ForgetPassRepository using MongoDB.
func NewMongoForgetPassRepo() ForgetPassRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("forget_pass")
	repo := &MongoForgetPassRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Expired tokens are reaped by Mongo itself.
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a reset token document, replacing any earlier one for the user.
func (r *MongoForgetPassRepo) Create(fp *models.ForgetPass) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": fp.UserID}); err != nil {
		return fmt.Errorf("failed to clear previous reset tokens: %w", err)
	}

	fp.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, fp); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// GetByToken retrieves a reset token document; nil when absent.
func (r *MongoForgetPassRepo) GetByToken(token string) (*models.ForgetPass, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var fp models.ForgetPass
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&fp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reset token: %w", err)
	}
	return &fp, nil
}

// DeleteByUserID removes all reset tokens belonging to a user.
func (r *MongoForgetPassRepo) DeleteByUserID(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}
	return nil
}
