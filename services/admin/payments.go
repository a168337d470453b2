package admin

import (
	"fmt"
	"time"

	"ouiimi/models"
	"ouiimi/utils"

	"go.uber.org/zap"
)

// slotElapsed reports whether the slot's end time has passed. A slot with an
// unparseable end time counts as elapsed once its date is in the past, so a
// malformed record cannot hold a payout forever.
func slotElapsed(slot models.TimeSlot, now time.Time) bool {
	end, err := slot.EndsAt(now.Location())
	if err != nil {
		return slot.Date < now.Format("2006-01-02")
	}
	return !end.After(now)
}

// PendingPayments lists release-eligible bookings with their payout context.
func (s *DefaultAdminService) PendingPayments(now time.Time) ([]PendingPayment, error) {
	candidates, err := s.BookingRepo.PendingRelease(now.Format("2006-01-02"))
	if err != nil {
		utils.GetLogger().Error("PendingPayments: query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending payments, please try again")
	}

	businesses := make(map[string]*models.Business)
	pending := make([]PendingPayment, 0, len(candidates))
	for _, b := range candidates {
		if !slotElapsed(b.TimeSlot, now) {
			continue
		}

		biz, ok := businesses[b.BusinessID]
		if !ok {
			biz, err = s.BusinessRepo.GetByID(b.BusinessID)
			if err != nil {
				utils.GetLogger().Warn("PendingPayments: business lookup failed",
					zap.String("businessId", b.BusinessID), zap.Error(err))
			}
			businesses[b.BusinessID] = biz
		}

		item := PendingPayment{
			Booking:       b,
			Business:      biz,
			ServiceAmount: b.ServiceAmount(),
		}
		if biz != nil {
			item.BankDetails = biz.BankDetails
		}
		pending = append(pending, item)
	}
	return pending, nil
}

// ReleasePayment flips the booking's admin payment status to released. Only the
// call that actually performs the flip sends the payout email, so releasing an
// already-released booking stays silent.
func (s *DefaultAdminService) ReleasePayment(bookingID string) (*models.Booking, error) {
	booking, releasedNow, err := s.BookingRepo.Release(bookingID)
	if err != nil {
		utils.GetLogger().Error("ReleasePayment: release failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to release payment, please try again")
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if !releasedNow {
		return booking, nil
	}

	biz, err := s.BusinessRepo.GetByID(booking.BusinessID)
	if err != nil || biz == nil {
		utils.GetLogger().Warn("ReleasePayment: business lookup failed, skipping email",
			zap.String("businessId", booking.BusinessID), zap.Error(err))
		return booking, nil
	}
	s.Notification.SendPaymentReleased(biz, booking)
	return booking, nil
}
