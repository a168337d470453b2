package bookingRepo

import (
	"context"

	"ouiimi/models"
)

// BookingRepository defines methods for booking data access. State transitions
// are conditional updates so that concurrent writers (webhook vs. synchronous
// confirm, double release) converge on the same state without redundant side
// effects.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	GetByPaymentIntentID(paymentIntentID string) (*models.Booking, error)
	GetByUserID(userID string) ([]models.Booking, error)
	GetByBusinessID(businessID string) ([]models.Booking, error)

	// CreateWithSlotClaim inserts the booking and marks the originating service
	// slot booked in a single transaction. The claim only succeeds when the slot
	// is currently unbooked, guaranteeing at most one booking per slot.
	CreateWithSlotClaim(ctx context.Context, booking *models.Booking) error

	// SetPaymentRefs persists the gateway session/intent identifiers.
	SetPaymentRefs(id, paymentIntentID, checkoutSessionID string) error

	// ConfirmDeposit transitions pending/unpaid -> confirmed/deposit_paid for the
	// booking holding the given payment intent. The returned bool is true only
	// when this call performed the transition; a booking already confirmed is
	// returned with false so callers skip duplicate side effects.
	ConfirmDeposit(paymentIntentID string) (*models.Booking, bool, error)

	// Cancel transitions a pending or confirmed booking to cancelled with the
	// given payment status. Returns the updated booking, or nil when the booking
	// was not in a cancellable state.
	Cancel(id string, paymentStatus models.PaymentStatus) (*models.Booking, error)

	// Complete transitions confirmed -> completed. No-op when not confirmed.
	Complete(id string) (*models.Booking, error)

	// PendingRelease returns confirmed or completed bookings not yet released
	// whose slot date is on or before the given date string, sorted by date then
	// start time, both descending. Completed bookings stay eligible: the worker
	// may flip confirmed to completed before the operator gets to the payout.
	// Callers apply the exact end-time cutoff.
	PendingRelease(maxDate string) ([]models.Booking, error)

	// Release flips adminPaymentStatus to released. The returned bool is true
	// only when this call performed the flip; releasing twice is a no-op.
	Release(id string) (*models.Booking, bool, error)
}
