package booking

import (
	"context"

	bookingRepo "ouiimi/database/repository/booking"
	businessRepo "ouiimi/database/repository/business"
	serviceRepo "ouiimi/database/repository/service"
	userRepo "ouiimi/database/repository/user"
	"ouiimi/models"
	"ouiimi/services/notification"
	"ouiimi/services/tasks"
)

// CreateBookingRequest selects a service slot for the authenticated customer.
type CreateBookingRequest struct {
	UserID    string
	ServiceID string
	StaffID   string
	Date      string
	StartTime string
}

// BookingService drives the booking lifecycle: creation with an atomic slot
// claim, deposit checkout, payment confirmation (synchronous and webhook),
// cancellation with refund rules, and worker-driven completion.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.BookingView, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	GetBusinessBookings(callerID, businessID string) ([]models.Booking, error)

	Checkout(bookingID string) (*models.CheckoutSession, error)
	ConfirmPayment(paymentIntentID string) (*models.Booking, error)
	HandlePaymentSucceeded(paymentIntentID string)
	Cancel(bookingID, callerID string) (*models.Booking, error)

	// Worker entry points.
	CompleteBooking(bookingID string) error
	SendReminder(bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ServiceRepo  serviceRepo.ServiceRepository
	BusinessRepo businessRepo.BusinessRepository
	StaffRepo    businessRepo.StaffRepository
	UserRepo     userRepo.UserRepository
	Notification notification.NotificationService
	Scheduler    tasks.Scheduler
}
