package business

import (
	"errors"
	"testing"

	"ouiimi/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	return f.businesses[id], nil
}
func (f *fakeBusinessRepo) GetByOwnerID(ownerID string) (*models.Business, error) {
	for _, b := range f.businesses {
		if b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, nil
}
func (f *fakeBusinessRepo) GetAll() ([]models.Business, error)           { return nil, nil }
func (f *fakeBusinessRepo) Create(b *models.Business) error              { return nil }
func (f *fakeBusinessRepo) UpdateWithDocument(id string, u bson.M) error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
	replaced []models.TimeSlot
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceRepo) GetByBusinessID(businessID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Create(s *models.Service) error               { return nil }
func (f *fakeServiceRepo) UpdateWithDocument(id string, u bson.M) error { return nil }
func (f *fakeServiceRepo) Delete(id string) error                       { return nil }
func (f *fakeServiceRepo) ReplaceTimeSlots(id string, slots []models.TimeSlot) error {
	f.replaced = slots
	return nil
}
func (f *fakeServiceRepo) ReleaseSlot(serviceID, date, startTime string) error { return nil }

func newSlotTestService() (*DefaultBusinessService, *fakeServiceRepo) {
	serviceRepo := &fakeServiceRepo{
		services: map[string]*models.Service{
			"svc-1": {
				ID:         "svc-1",
				BusinessID: "biz-1",
				TimeSlots: []models.TimeSlot{
					{Date: "2026-03-15", StartTime: "10:00", EndTime: "11:00", Cost: 50, Duration: 60, IsBooked: true},
					{Date: "2026-03-15", StartTime: "11:00", EndTime: "12:00", Cost: 50, Duration: 60},
				},
			},
		},
	}
	svc := &DefaultBusinessService{
		Repo: &fakeBusinessRepo{businesses: map[string]*models.Business{
			"biz-1": {ID: "biz-1", OwnerID: "owner-1"},
		}},
		ServiceRepo: serviceRepo,
	}
	return svc, serviceRepo
}

// Editing the schedule must not silently free a slot that is already booked.
func TestReplaceTimeSlotsPreservesBookedFlag(t *testing.T) {
	svc, serviceRepo := newSlotTestService()

	_, err := svc.ReplaceTimeSlots("owner-1", "svc-1", []SlotRequest{
		{Date: "2026-03-15", StartTime: "10:00", EndTime: "11:00", Cost: 60, Duration: 60},
		{Date: "2026-03-16", StartTime: "10:00", EndTime: "11:00", Cost: 60, Duration: 60},
	})
	if err != nil {
		t.Fatalf("ReplaceTimeSlots: %v", err)
	}
	if len(serviceRepo.replaced) != 2 {
		t.Fatalf("replaced %d slots, want 2", len(serviceRepo.replaced))
	}
	if !serviceRepo.replaced[0].IsBooked {
		t.Error("re-listed booked slot lost its booked flag")
	}
	if serviceRepo.replaced[1].IsBooked {
		t.Error("new slot should not start booked")
	}
}

func TestReplaceTimeSlotsRejectsBadInput(t *testing.T) {
	svc, _ := newSlotTestService()

	_, err := svc.ReplaceTimeSlots("owner-1", "svc-1", []SlotRequest{
		{Date: "2026-03-15", StartTime: "11:00", EndTime: "10:00", Cost: 60, Duration: 60},
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("inverted slot: expected ValidationError, got %v", err)
	}

	_, err = svc.ReplaceTimeSlots("owner-1", "svc-1", []SlotRequest{
		{Date: "2026-03-15", StartTime: "10:00", EndTime: "11:00", Cost: 60, Duration: 60},
		{Date: "2026-03-15", StartTime: "10:00", EndTime: "12:00", Cost: 60, Duration: 120},
	})
	if !errors.As(err, &ve) {
		t.Errorf("duplicate slot: expected ValidationError, got %v", err)
	}
}

func TestReplaceTimeSlotsRequiresOwnership(t *testing.T) {
	svc, _ := newSlotTestService()

	_, err := svc.ReplaceTimeSlots("intruder", "svc-1", []SlotRequest{
		{Date: "2026-03-15", StartTime: "10:00", EndTime: "11:00", Cost: 60, Duration: 60},
	})
	var fe *ForbiddenError
	if !errors.As(err, &fe) {
		t.Errorf("expected ForbiddenError, got %v", err)
	}
}
