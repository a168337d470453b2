package notification

import "ouiimi/models"

// NotificationService sends transactional email. Every send is fire-and-forget
// from the caller's perspective: failures are logged and swallowed, never
// allowed to block a booking transition.
type NotificationService interface {
	SendBookingConfirmed(customer *models.User, business *models.Business, booking *models.Booking)
	SendBookingCancelledByCustomer(customer *models.User, business *models.Business, booking *models.Booking, refundAmount float64)
	SendBookingCancelledByBusiness(customer *models.User, business *models.Business, booking *models.Booking, refundAmount float64)
	SendBookingReminder(customer *models.User, business *models.Business, booking *models.Booking)
	SendPaymentReleased(business *models.Business, booking *models.Booking)
	SendPasswordReset(user *models.User, resetToken string)
}
