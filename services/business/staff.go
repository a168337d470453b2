package business

import (
	"fmt"
	"time"

	"ouiimi/models"
	"ouiimi/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AddStaff adds a team member to the caller's business.
func (s *DefaultBusinessService) AddStaff(ownerID, businessID string, req StaffRequest) (*models.Staff, error) {
	if _, err := s.requireOwnedBusiness(ownerID, businessID); err != nil {
		return nil, err
	}

	member := &models.Staff{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		IsActive:   true,
	}
	if err := s.StaffRepo.Create(member); err != nil {
		utils.GetLogger().Error("AddStaff: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to add staff member, please try again")
	}
	return s.StaffRepo.GetByID(member.ID)
}

// UpdateStaff edits a staff member after verifying the caller owns the
// member's business.
func (s *DefaultBusinessService) UpdateStaff(ownerID, staffID string, req StaffRequest) (*models.Staff, error) {
	member, err := s.requireOwnedStaff(ownerID, staffID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":       req.Name,
		"role":       req.Role,
		"email":      req.Email,
		"updated_at": time.Now(),
	}}
	if err := s.StaffRepo.UpdateWithDocument(member.ID, update); err != nil {
		utils.GetLogger().Error("UpdateStaff: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update staff member, please try again")
	}
	return s.StaffRepo.GetByID(member.ID)
}

// DeactivateStaff soft-deactivates a staff member. The record stays so
// historical bookings keep a resolvable reference.
func (s *DefaultBusinessService) DeactivateStaff(ownerID, staffID string) error {
	member, err := s.requireOwnedStaff(ownerID, staffID)
	if err != nil {
		return err
	}
	if err := s.StaffRepo.SetActive(member.ID, false); err != nil {
		utils.GetLogger().Error("DeactivateStaff: update failed", zap.Error(err))
		return fmt.Errorf("failed to deactivate staff member, please try again")
	}
	return nil
}

// ListStaff lists a business's staff. Customers only see active members;
// owners may include deactivated ones.
func (s *DefaultBusinessService) ListStaff(businessID string, activeOnly bool) ([]models.Staff, error) {
	return s.StaffRepo.GetByBusinessID(businessID, activeOnly)
}

func (s *DefaultBusinessService) requireOwnedStaff(ownerID, staffID string) (*models.Staff, error) {
	member, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		utils.GetLogger().Error("staff lookup failed", zap.String("staffId", staffID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch staff member, please try again")
	}
	if member == nil {
		return nil, &NotFoundError{Resource: "staff member", ID: staffID}
	}
	if _, err := s.requireOwnedBusiness(ownerID, member.BusinessID); err != nil {
		return nil, err
	}
	return member, nil
}
