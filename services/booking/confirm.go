package booking

import (
	"fmt"
	"time"

	"ouiimi/models"
	"ouiimi/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ConfirmPayment is the client-driven confirmation path: the gateway is asked
// for the authoritative payment status before any state changes. A payment
// that has not succeeded leaves the booking untouched.
func (s *DefaultBookingService) ConfirmPayment(paymentIntentID string) (*models.Booking, error) {
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		utils.GetLogger().Error("ConfirmPayment: failed to retrieve payment intent",
			zap.String("paymentIntentId", paymentIntentID), zap.Error(err))
		return nil, fmt.Errorf("payment gateway error, please try again")
	}
	return s.confirmIntentStatus(pi.Status, paymentIntentID)
}

// confirmIntentStatus applies the gateway's verdict: anything but succeeded is
// rejected before the repository is touched.
func (s *DefaultBookingService) confirmIntentStatus(status stripe.PaymentIntentStatus, paymentIntentID string) (*models.Booking, error) {
	if status != stripe.PaymentIntentStatusSucceeded {
		return nil, &PaymentNotSucceededError{Status: string(status)}
	}
	return s.confirmByIntent(paymentIntentID)
}

// HandlePaymentSucceeded is the webhook-driven confirmation path. It shares
// the same conditional transition as ConfirmPayment, so whichever path arrives
// first wins and the other becomes a no-op. An unknown payment intent is
// logged and dropped; the webhook endpoint still acknowledges the event.
func (s *DefaultBookingService) HandlePaymentSucceeded(paymentIntentID string) {
	if _, err := s.confirmByIntent(paymentIntentID); err != nil {
		utils.GetLogger().Warn("webhook: payment succeeded but booking not updated",
			zap.String("paymentIntentId", paymentIntentID), zap.Error(err))
	}
}

// confirmByIntent moves the booking holding the payment intent from
// pending/unpaid to confirmed/deposit_paid. The repository update is
// conditional on the pending state, so confirmation emails and scheduled
// tasks fire exactly once no matter how many confirmation calls race.
func (s *DefaultBookingService) confirmByIntent(paymentIntentID string) (*models.Booking, error) {
	b, confirmedNow, err := s.Repo.ConfirmDeposit(paymentIntentID)
	if err != nil {
		utils.GetLogger().Error("confirmByIntent: transition failed",
			zap.String("paymentIntentId", paymentIntentID), zap.Error(err))
		return nil, fmt.Errorf("confirmation failed, please try again")
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking for payment intent", ID: paymentIntentID}
	}
	if !confirmedNow {
		return b, nil
	}

	s.notifyConfirmed(b)
	s.scheduleFollowups(b)
	return b, nil
}

func (s *DefaultBookingService) notifyConfirmed(b *models.Booking) {
	logger := utils.GetLogger()
	customer, err := s.UserRepo.GetByID(b.UserID)
	if err != nil || customer == nil {
		logger.Warn("notifyConfirmed: customer lookup failed", zap.String("bookingId", b.ID))
		return
	}
	business, err := s.BusinessRepo.GetByID(b.BusinessID)
	if err != nil || business == nil {
		logger.Warn("notifyConfirmed: business lookup failed", zap.String("bookingId", b.ID))
		return
	}
	s.Notification.SendBookingConfirmed(customer, business, b)
}

// scheduleFollowups queues the reminder email (24h before the slot) and the
// completion transition (when the slot ends). Failures are logged only; the
// confirmation itself has already committed.
func (s *DefaultBookingService) scheduleFollowups(b *models.Booking) {
	if s.Scheduler == nil {
		return
	}
	logger := utils.GetLogger()

	if start, err := b.TimeSlot.StartsAt(time.Local); err == nil {
		if err := s.Scheduler.ScheduleReminder(b.ID, start.Add(-24*time.Hour)); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("bookingId", b.ID), zap.Error(err))
		}
	} else {
		logger.Warn("unparseable slot start", zap.String("bookingId", b.ID), zap.Error(err))
	}

	if end, err := b.TimeSlot.EndsAt(time.Local); err == nil {
		if err := s.Scheduler.ScheduleCompletion(b.ID, end); err != nil {
			logger.Warn("failed to schedule completion", zap.String("bookingId", b.ID), zap.Error(err))
		}
	} else {
		logger.Warn("unparseable slot end", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

// CompleteBooking is the worker entry point that finalizes an elapsed
// confirmed booking. Bookings cancelled in the meantime are left alone.
func (s *DefaultBookingService) CompleteBooking(bookingID string) error {
	b, err := s.Repo.Complete(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		utils.GetLogger().Debug("CompleteBooking: booking not in confirmed state",
			zap.String("bookingId", bookingID))
	}
	return nil
}

// SendReminder is the worker entry point for reminder emails. Reminders only
// go out for bookings still confirmed at fire time.
func (s *DefaultBookingService) SendReminder(bookingID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil || b.Status != models.BookingConfirmed {
		return nil
	}

	customer, err := s.UserRepo.GetByID(b.UserID)
	if err != nil || customer == nil {
		return fmt.Errorf("reminder: customer %s not found", b.UserID)
	}
	business, err := s.BusinessRepo.GetByID(b.BusinessID)
	if err != nil || business == nil {
		return fmt.Errorf("reminder: business %s not found", b.BusinessID)
	}
	s.Notification.SendBookingReminder(customer, business, b)
	return nil
}
