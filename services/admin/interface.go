package admin

import (
	"time"

	bookingRepo "ouiimi/database/repository/booking"
	businessRepo "ouiimi/database/repository/business"
	"ouiimi/models"
	"ouiimi/services/notification"
)

// PendingPayment is one booking awaiting release, with the payout context the
// operator needs to act on it.
type PendingPayment struct {
	Booking       models.Booking     `json:"booking"`
	Business      *models.Business   `json:"business,omitempty"`
	ServiceAmount float64            `json:"serviceAmount"`
	BankDetails   models.BankDetails `json:"bankDetails,omitempty"`
}

type AdminService interface {
	// PendingPayments lists confirmed bookings whose slot has fully elapsed and
	// whose business share has not been released, newest first.
	PendingPayments(now time.Time) ([]PendingPayment, error)

	// ReleasePayment marks a booking's business share as released and notifies
	// the business. Releasing twice is a harmless no-op.
	ReleasePayment(bookingID string) (*models.Booking, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	BookingRepo  bookingRepo.BookingRepository
	BusinessRepo businessRepo.BusinessRepository
	Notification notification.NotificationService
}
