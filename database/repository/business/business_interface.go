package businessRepo

import (
	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	GetByID(id string) (*models.Business, error)
	GetByOwnerID(ownerID string) (*models.Business, error)
	GetAll() ([]models.Business, error)
	Create(business *models.Business) error
	UpdateWithDocument(id string, update bson.M) error
}

// StaffRepository defines methods for staff data access. Staff records are
// soft-deactivated via is_active, never removed.
type StaffRepository interface {
	GetByID(id string) (*models.Staff, error)
	GetByBusinessID(businessID string, activeOnly bool) ([]models.Staff, error)
	Create(staff *models.Staff) error
	UpdateWithDocument(id string, update bson.M) error
	SetActive(id string, active bool) error
}
