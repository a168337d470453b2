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

// RegisterBusiness creates a business owned by the caller and promotes the
// caller's account to the business role. One business per owner.
func (s *DefaultBusinessService) RegisterBusiness(ownerID string, req RegisterBusinessRequest) (*models.Business, error) {
	existing, err := s.Repo.GetByOwnerID(ownerID)
	if err != nil {
		utils.GetLogger().Error("RegisterBusiness: owner lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to register business, please try again")
	}
	if existing != nil {
		return nil, &ConflictError{Message: "you already have a registered business"}
	}

	biz := &models.Business{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
	}
	if err := s.Repo.Create(biz); err != nil {
		utils.GetLogger().Error("RegisterBusiness: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to register business, please try again")
	}

	roleUpdate := bson.M{"$set": bson.M{
		"role":       models.RoleBusiness,
		"updated_at": time.Now(),
	}}
	if err := s.UserRepo.UpdateWithDocument(ownerID, roleUpdate); err != nil {
		utils.GetLogger().Error("RegisterBusiness: role promotion failed",
			zap.String("ownerId", ownerID), zap.Error(err))
	}

	return s.Repo.GetByID(biz.ID)
}

// businessUpdatableFields maps JSON field names to their stored counterparts.
var businessUpdatableFields = map[string]string{
	"name":        "name",
	"category":    "category",
	"description": "description",
	"email":       "email",
	"phoneNumber": "phone_number",
	"address":     "address",
	"city":        "city",
}

// bankDetailFields maps nested bankDetails keys.
var bankDetailFields = map[string]string{
	"accountHolder": "bank_details.account_holder",
	"accountNumber": "bank_details.account_number",
	"bankName":      "bank_details.bank_name",
	"routingNumber": "bank_details.routing_number",
}

// UpdateBusiness applies whitelisted changes, including bank details for
// payouts, after verifying ownership.
func (s *DefaultBusinessService) UpdateBusiness(ownerID, businessID string, updates map[string]interface{}) (*models.Business, error) {
	biz, err := s.requireOwnedBusiness(ownerID, businessID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	for key, value := range updates {
		if field, ok := businessUpdatableFields[key]; ok {
			set[field] = value
			continue
		}
		if key == "bankDetails" {
			nested, ok := value.(map[string]interface{})
			if !ok {
				return nil, &ValidationError{Message: "bankDetails must be an object"}
			}
			for bk, bv := range nested {
				if field, ok := bankDetailFields[bk]; ok {
					set[field] = bv
				}
			}
		}
	}

	if err := s.Repo.UpdateWithDocument(biz.ID, bson.M{"$set": set}); err != nil {
		utils.GetLogger().Error("UpdateBusiness: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update business, please try again")
	}
	return s.Repo.GetByID(biz.ID)
}

// GetBusiness retrieves a business by ID.
func (s *DefaultBusinessService) GetBusiness(businessID string) (*models.Business, error) {
	biz, err := s.Repo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, &NotFoundError{Resource: "business", ID: businessID}
	}
	return biz, nil
}

// GetBusinessByOwner retrieves the caller's own business.
func (s *DefaultBusinessService) GetBusinessByOwner(ownerID string) (*models.Business, error) {
	biz, err := s.Repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, &NotFoundError{Resource: "business", ID: "for owner " + ownerID}
	}
	return biz, nil
}

// ListBusinesses returns every registered business; the browse catalogue.
func (s *DefaultBusinessService) ListBusinesses() ([]models.Business, error) {
	return s.Repo.GetAll()
}

// requireOwnedBusiness fetches the business and checks the caller owns it.
func (s *DefaultBusinessService) requireOwnedBusiness(ownerID, businessID string) (*models.Business, error) {
	biz, err := s.Repo.GetByID(businessID)
	if err != nil {
		utils.GetLogger().Error("business lookup failed", zap.String("businessId", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch business, please try again")
	}
	if biz == nil {
		return nil, &NotFoundError{Resource: "business", ID: businessID}
	}
	if biz.OwnerID != ownerID {
		return nil, &ForbiddenError{Message: "you do not own this business"}
	}
	return biz, nil
}
