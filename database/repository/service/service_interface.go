package serviceRepo

import (
	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for service and embedded slot data access.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	GetByBusinessID(businessID string) ([]models.Service, error)
	Create(service *models.Service) error
	UpdateWithDocument(id string, update bson.M) error
	Delete(id string) error
	// ReplaceTimeSlots swaps the full slot list for a service.
	ReplaceTimeSlots(id string, slots []models.TimeSlot) error
	// ReleaseSlot clears the booked flag on the slot identified by date+startTime.
	ReleaseSlot(serviceID, date, startTime string) error
}
