package user

import (
	"fmt"
	"time"

	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// updatableFields whitelists the profile fields a user may edit directly.
var updatableFields = map[string]string{
	"username":    "username",
	"phoneNumber": "phone_number",
}

// UpdateUser applies whitelisted profile changes and returns the fresh record.
func (s *DefaultUserService) UpdateUser(userID string, updates map[string]interface{}) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	for key, value := range updates {
		if field, ok := updatableFields[key]; ok {
			set[field] = value
		}
	}

	if err := s.Repo.UpdateWithDocument(userID, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// SetRole changes a user's role, e.g. promoting a customer to business owner.
func (s *DefaultUserService) SetRole(userID, role string) error {
	if role != models.RoleCustomer && role != models.RoleBusiness && role != models.RoleAdmin {
		return &ValidationError{Message: "invalid role"}
	}
	update := bson.M{"$set": bson.M{
		"role":       role,
		"updated_at": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers lists every account; admin only, enforced at the route level.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
