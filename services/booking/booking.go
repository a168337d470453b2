package booking

import (
	"context"
	"fmt"

	bookingRepo "ouiimi/database/repository/booking"
	"ouiimi/models"
	"ouiimi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking reserves a service slot for a customer. The slot's data is
// copied onto the booking, and the slot itself is claimed in the same
// transaction that inserts the booking record, so two concurrent requests for
// the same slot cannot both succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	svc, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		utils.GetLogger().Error("CreateBooking: failed to fetch service", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}
	if svc == nil {
		return nil, &NotFoundError{Resource: "service", ID: req.ServiceID}
	}

	var slot *models.TimeSlot
	for i := range svc.TimeSlots {
		if svc.TimeSlots[i].Date == req.Date && svc.TimeSlots[i].StartTime == req.StartTime {
			slot = &svc.TimeSlots[i]
			break
		}
	}
	if slot == nil {
		return nil, &NotFoundError{Resource: "time slot", ID: req.Date + " " + req.StartTime}
	}
	if slot.IsBooked {
		return nil, &ConflictError{Message: "time slot is no longer available"}
	}

	if req.StaffID != "" {
		staff, err := s.StaffRepo.GetByID(req.StaffID)
		if err != nil {
			utils.GetLogger().Error("CreateBooking: failed to fetch staff", zap.Error(err))
			return nil, fmt.Errorf("booking failed, please try again")
		}
		if staff == nil || staff.BusinessID != svc.BusinessID || !staff.IsActive {
			return nil, &NotFoundError{Resource: "staff", ID: req.StaffID}
		}
	}

	deposit := DepositFor(slot.Cost)
	booking := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		BusinessID:      svc.BusinessID,
		ServiceID:       svc.ID,
		StaffID:         req.StaffID,
		TimeSlot:        *slot,
		TotalCost:       slot.Cost,
		DepositAmount:   deposit,
		RemainingAmount: round2(slot.Cost - deposit),
		PlatformFee:     PlatformFeeOrDefault(0),
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentUnpaid,
	}

	if err := s.Repo.CreateWithSlotClaim(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return nil, &ConflictError{Message: "time slot is no longer available"}
		}
		utils.GetLogger().Error("CreateBooking: transaction failed", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}

	return booking, nil
}

// GetBooking returns a fully-resolved booking view: every reference is either
// expanded into its entity or left nil, never a bare id in an object field.
func (s *DefaultBookingService) GetBooking(id string) (*models.BookingView, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: id}
	}
	return s.resolveView(b), nil
}

func (s *DefaultBookingService) resolveView(b *models.Booking) *models.BookingView {
	logger := utils.GetLogger()
	view := &models.BookingView{Booking: *b}

	if u, err := s.UserRepo.GetByID(b.UserID); err == nil {
		view.User = u
	} else {
		logger.Warn("resolveView: user lookup failed", zap.String("bookingId", b.ID), zap.Error(err))
	}
	if biz, err := s.BusinessRepo.GetByID(b.BusinessID); err == nil {
		view.Business = biz
	} else {
		logger.Warn("resolveView: business lookup failed", zap.String("bookingId", b.ID), zap.Error(err))
	}
	if svc, err := s.ServiceRepo.GetByID(b.ServiceID); err == nil {
		view.Service = svc
	} else {
		logger.Warn("resolveView: service lookup failed", zap.String("bookingId", b.ID), zap.Error(err))
	}
	if b.StaffID != "" {
		if st, err := s.StaffRepo.GetByID(b.StaffID); err == nil {
			view.Staff = st
		} else {
			logger.Warn("resolveView: staff lookup failed", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return view
}

// GetUserBookings lists a customer's bookings.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUserID(userID)
}

// GetBusinessBookings lists a business's bookings; only the owner may see them.
func (s *DefaultBookingService) GetBusinessBookings(callerID, businessID string) ([]models.Booking, error) {
	biz, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, &NotFoundError{Resource: "business", ID: businessID}
	}
	if biz.OwnerID != callerID {
		return nil, &ForbiddenError{Message: "not the owner of this business"}
	}
	return s.Repo.GetByBusinessID(businessID)
}
