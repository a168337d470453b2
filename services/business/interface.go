package business

import (
	businessRepo "ouiimi/database/repository/business"
	serviceRepo "ouiimi/database/repository/service"
	userRepo "ouiimi/database/repository/user"
	"ouiimi/models"
)

// RegisterBusinessRequest carries the fields required to create a business.
// The owner is always the authenticated caller.
type RegisterBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

// StaffRequest carries the fields for adding or updating a staff member.
type StaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Email string `json:"email" binding:"omitempty,email"`
}

// ServiceRequest carries the fields for creating or updating a service offering.
type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
}

// SlotRequest is one bookable interval in a slot list replacement.
type SlotRequest struct {
	Date      string   `json:"date" binding:"required,date"`
	StartTime string   `json:"startTime" binding:"required,clock"`
	EndTime   string   `json:"endTime" binding:"required,clock"`
	Cost      float64  `json:"cost" binding:"required,gt=0"`
	Duration  int      `json:"duration" binding:"required,gt=0"`
	StaffIDs  []string `json:"staffIds"`
}

type BusinessService interface {
	// Business management
	RegisterBusiness(ownerID string, req RegisterBusinessRequest) (*models.Business, error)
	UpdateBusiness(ownerID, businessID string, updates map[string]interface{}) (*models.Business, error)
	GetBusiness(businessID string) (*models.Business, error)
	GetBusinessByOwner(ownerID string) (*models.Business, error)
	ListBusinesses() ([]models.Business, error)

	// Staff management
	AddStaff(ownerID, businessID string, req StaffRequest) (*models.Staff, error)
	UpdateStaff(ownerID, staffID string, req StaffRequest) (*models.Staff, error)
	DeactivateStaff(ownerID, staffID string) error
	ListStaff(businessID string, activeOnly bool) ([]models.Staff, error)

	// Service offerings
	CreateService(ownerID, businessID string, req ServiceRequest) (*models.Service, error)
	UpdateService(ownerID, serviceID string, req ServiceRequest) (*models.Service, error)
	DeleteService(ownerID, serviceID string) error
	GetService(serviceID string) (*models.Service, error)
	ListServices(businessID string) ([]models.Service, error)
	ReplaceTimeSlots(ownerID, serviceID string, slots []SlotRequest) (*models.Service, error)
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo        businessRepo.BusinessRepository
	StaffRepo   businessRepo.StaffRepository
	ServiceRepo serviceRepo.ServiceRepository
	UserRepo    userRepo.UserRepository
}
