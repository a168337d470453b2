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

// CreateService adds an offering to the caller's business.
func (s *DefaultBusinessService) CreateService(ownerID, businessID string, req ServiceRequest) (*models.Service, error) {
	if _, err := s.requireOwnedBusiness(ownerID, businessID); err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		TimeSlots:   []models.TimeSlot{},
	}
	if err := s.ServiceRepo.Create(svc); err != nil {
		utils.GetLogger().Error("CreateService: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create service, please try again")
	}
	return s.ServiceRepo.GetByID(svc.ID)
}

// UpdateService edits an offering's details. The slot list is managed
// separately via ReplaceTimeSlots.
func (s *DefaultBusinessService) UpdateService(ownerID, serviceID string, req ServiceRequest) (*models.Service, error) {
	svc, err := s.requireOwnedService(ownerID, serviceID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"duration":    req.Duration,
		"updated_at":  time.Now(),
	}}
	if err := s.ServiceRepo.UpdateWithDocument(svc.ID, update); err != nil {
		utils.GetLogger().Error("UpdateService: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update service, please try again")
	}
	return s.ServiceRepo.GetByID(svc.ID)
}

// DeleteService removes an offering. Bookings keep their own copy of the slot
// data, so deletion does not orphan them.
func (s *DefaultBusinessService) DeleteService(ownerID, serviceID string) error {
	svc, err := s.requireOwnedService(ownerID, serviceID)
	if err != nil {
		return err
	}
	if err := s.ServiceRepo.Delete(svc.ID); err != nil {
		utils.GetLogger().Error("DeleteService: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete service, please try again")
	}
	return nil
}

// GetService retrieves an offering by ID.
func (s *DefaultBusinessService) GetService(serviceID string) (*models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, &NotFoundError{Resource: "service", ID: serviceID}
	}
	return svc, nil
}

// ListServices lists a business's offerings; the public catalogue view.
func (s *DefaultBusinessService) ListServices(businessID string) ([]models.Service, error) {
	return s.ServiceRepo.GetByBusinessID(businessID)
}

// ReplaceTimeSlots swaps the full availability list for a service. Slots that
// are already booked keep their booked flag when the same date+startTime
// reappears in the new list, so a schedule edit cannot silently free a
// reserved interval.
func (s *DefaultBusinessService) ReplaceTimeSlots(ownerID, serviceID string, slots []SlotRequest) (*models.Service, error) {
	svc, err := s.requireOwnedService(ownerID, serviceID)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(svc.TimeSlots))
	for _, existing := range svc.TimeSlots {
		if existing.IsBooked {
			booked[existing.Date+" "+existing.StartTime] = true
		}
	}

	newSlots := make([]models.TimeSlot, 0, len(slots))
	seen := make(map[string]bool, len(slots))
	for _, req := range slots {
		if req.StartTime >= req.EndTime {
			return nil, &ValidationError{Message: fmt.Sprintf("slot %s %s ends before it starts", req.Date, req.StartTime)}
		}
		key := req.Date + " " + req.StartTime
		if seen[key] {
			return nil, &ValidationError{Message: fmt.Sprintf("duplicate slot at %s", key)}
		}
		seen[key] = true
		newSlots = append(newSlots, models.TimeSlot{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Cost:      req.Cost,
			Duration:  req.Duration,
			StaffIDs:  req.StaffIDs,
			IsBooked:  booked[key],
		})
	}

	if err := s.ServiceRepo.ReplaceTimeSlots(svc.ID, newSlots); err != nil {
		utils.GetLogger().Error("ReplaceTimeSlots: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update availability, please try again")
	}
	return s.ServiceRepo.GetByID(svc.ID)
}

func (s *DefaultBusinessService) requireOwnedService(ownerID, serviceID string) (*models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		utils.GetLogger().Error("service lookup failed", zap.String("serviceId", serviceID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch service, please try again")
	}
	if svc == nil {
		return nil, &NotFoundError{Resource: "service", ID: serviceID}
	}
	if _, err := s.requireOwnedBusiness(ownerID, svc.BusinessID); err != nil {
		return nil, err
	}
	return svc, nil
}
