package booking

import (
	"fmt"

	"ouiimi/models"
	"ouiimi/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// Cancel ends a pending or confirmed booking. Who cancels decides the refund:
// the customer forfeits the service fee and half the deposit, the business
// refunds the deposit in full (fee still non-refundable). Cancelling an
// already-cancelled booking is a no-op.
func (s *DefaultBookingService) Cancel(bookingID, callerID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("Cancel: failed to fetch booking", zap.Error(err))
		return nil, fmt.Errorf("cancellation failed, please try again")
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	actor, err := s.cancellingActor(b, callerID)
	if err != nil {
		return nil, err
	}

	if b.Status == models.BookingCancelled {
		return b, nil
	}
	if !CanTransition(b.Status, models.BookingCancelled, actor) {
		return nil, &InvalidTransitionError{From: string(b.Status), To: string(models.BookingCancelled)}
	}

	refundAmount := 0.0
	newPaymentStatus := b.PaymentStatus
	if b.PaymentStatus == models.PaymentDepositPaid {
		switch actor {
		case ActorCustomer:
			refundAmount = CustomerCancelRefund(b.DepositAmount)
			newPaymentStatus = models.PaymentPartiallyRefunded
		case ActorBusiness:
			refundAmount = BusinessCancelRefund(b.DepositAmount)
			newPaymentStatus = models.PaymentRefunded
		}

		if refundAmount > 0 {
			if err := s.issueRefund(b, refundAmount); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.Repo.Cancel(b.ID, newPaymentStatus)
	if err != nil {
		utils.GetLogger().Error("Cancel: transition failed", zap.String("bookingId", b.ID), zap.Error(err))
		return nil, fmt.Errorf("cancellation failed, please try again")
	}
	if updated == nil {
		// Lost a race with another cancel; fetch the final state.
		current, err := s.Repo.GetByID(b.ID)
		if err != nil || current == nil {
			return nil, fmt.Errorf("cancellation failed, please try again")
		}
		return current, nil
	}

	if err := s.ServiceRepo.ReleaseSlot(updated.ServiceID, updated.TimeSlot.Date, updated.TimeSlot.StartTime); err != nil {
		utils.GetLogger().Warn("Cancel: failed to release slot",
			zap.String("bookingId", updated.ID), zap.Error(err))
	}

	s.notifyCancelled(updated, actor, refundAmount)
	return updated, nil
}

// cancellingActor maps the caller onto a lifecycle actor: the booking's owner
// cancels as the customer, the business's owner cancels as the business.
func (s *DefaultBookingService) cancellingActor(b *models.Booking, callerID string) (Actor, error) {
	if callerID == b.UserID {
		return ActorCustomer, nil
	}
	biz, err := s.BusinessRepo.GetByID(b.BusinessID)
	if err != nil {
		utils.GetLogger().Error("cancellingActor: failed to fetch business", zap.Error(err))
		return "", fmt.Errorf("cancellation failed, please try again")
	}
	if biz != nil && biz.OwnerID == callerID {
		return ActorBusiness, nil
	}
	return "", &ForbiddenError{Message: "not allowed to cancel this booking"}
}

// refundIdempotencyKey ties the refund to its booking. The refund is issued
// before the cancel write commits; if that write fails and the cancel is
// retried, the gateway replays the original refund instead of issuing a
// second one.
func refundIdempotencyKey(bookingID string) string {
	return "cancel-" + bookingID
}

func (s *DefaultBookingService) issueRefund(b *models.Booking, amount float64) error {
	if b.PaymentIntentID == "" {
		utils.GetLogger().Warn("issueRefund: booking has no payment intent",
			zap.String("bookingId", b.ID))
		return fmt.Errorf("cancellation failed, please try again")
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(b.PaymentIntentID),
		Amount:        stripe.Int64(ToCents(amount)),
	}
	params.SetIdempotencyKey(refundIdempotencyKey(b.ID))
	if _, err := refund.New(params); err != nil {
		utils.GetLogger().Error("issueRefund: gateway refund failed",
			zap.String("bookingId", b.ID), zap.Error(err))
		return fmt.Errorf("payment gateway error, please try again")
	}
	return nil
}

func (s *DefaultBookingService) notifyCancelled(b *models.Booking, actor Actor, refundAmount float64) {
	logger := utils.GetLogger()
	customer, err := s.UserRepo.GetByID(b.UserID)
	if err != nil || customer == nil {
		logger.Warn("notifyCancelled: customer lookup failed", zap.String("bookingId", b.ID))
		return
	}
	business, err := s.BusinessRepo.GetByID(b.BusinessID)
	if err != nil || business == nil {
		logger.Warn("notifyCancelled: business lookup failed", zap.String("bookingId", b.ID))
		return
	}

	switch actor {
	case ActorCustomer:
		s.Notification.SendBookingCancelledByCustomer(customer, business, b, refundAmount)
	case ActorBusiness:
		s.Notification.SendBookingCancelledByBusiness(customer, business, b, refundAmount)
	}
}
