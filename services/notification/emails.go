package notification

import (
	"fmt"

	"ouiimi/models"
)

func slotVariables(booking *models.Booking) map[string]interface{} {
	return map[string]interface{}{
		"bookingId": booking.ID,
		"date":      booking.TimeSlot.Date,
		"startTime": booking.TimeSlot.StartTime,
		"endTime":   booking.TimeSlot.EndTime,
	}
}

// SendBookingConfirmed notifies the customer and the business that the deposit
// was paid and the slot is locked in.
func (s *MailjetNotificationService) SendBookingConfirmed(customer *models.User, business *models.Business, booking *models.Booking) {
	vars := slotVariables(booking)
	vars["deposit"] = formatAmount(booking.DepositAmount)
	vars["remaining"] = formatAmount(booking.RemainingAmount)

	s.send(customer.Email, customer.Username,
		fmt.Sprintf("Booking confirmed with %s on %s", business.Name, booking.TimeSlot.Date),
		fmt.Sprintf("Your booking on %s at %s is confirmed. Deposit paid: %s. Due at the business: %s.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime,
			formatAmount(booking.DepositAmount), formatAmount(booking.RemainingAmount)),
		vars)

	s.send(business.Email, business.Name,
		fmt.Sprintf("New booking on %s at %s", booking.TimeSlot.Date, booking.TimeSlot.StartTime),
		fmt.Sprintf("A customer booked your service for %s at %s. Deposit received: %s.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime, formatAmount(booking.DepositAmount)),
		vars)
}

// SendBookingCancelledByCustomer notifies both parties. The customer forfeits
// the service fee and half the deposit; the business keeps the other half.
func (s *MailjetNotificationService) SendBookingCancelledByCustomer(customer *models.User, business *models.Business, booking *models.Booking, refundAmount float64) {
	vars := slotVariables(booking)
	vars["refund"] = formatAmount(refundAmount)

	s.send(customer.Email, customer.Username,
		"Your booking has been cancelled",
		fmt.Sprintf("You cancelled your booking on %s at %s. Refund issued: %s (the service fee is non-refundable).",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime, formatAmount(refundAmount)),
		vars)

	s.send(business.Email, business.Name,
		"A booking was cancelled by the customer",
		fmt.Sprintf("The booking on %s at %s was cancelled by the customer. You retain 50%% of the deposit.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime),
		vars)
}

// SendBookingCancelledByBusiness notifies both parties. The customer's deposit
// is fully refunded; the service fee remains non-refundable.
func (s *MailjetNotificationService) SendBookingCancelledByBusiness(customer *models.User, business *models.Business, booking *models.Booking, refundAmount float64) {
	vars := slotVariables(booking)
	vars["refund"] = formatAmount(refundAmount)

	s.send(customer.Email, customer.Username,
		fmt.Sprintf("%s cancelled your booking", business.Name),
		fmt.Sprintf("Your booking on %s at %s was cancelled by the business. Your deposit of %s has been refunded.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime, formatAmount(refundAmount)),
		vars)

	s.send(business.Email, business.Name,
		"Booking cancellation processed",
		fmt.Sprintf("You cancelled the booking on %s at %s. The customer's deposit was refunded in full.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime),
		vars)
}

// SendBookingReminder reminds the customer of an upcoming confirmed booking.
func (s *MailjetNotificationService) SendBookingReminder(customer *models.User, business *models.Business, booking *models.Booking) {
	s.send(customer.Email, customer.Username,
		fmt.Sprintf("Reminder: your booking with %s tomorrow", business.Name),
		fmt.Sprintf("This is a reminder of your booking on %s at %s with %s. Amount due at the business: %s.",
			booking.TimeSlot.Date, booking.TimeSlot.StartTime, business.Name,
			formatAmount(booking.RemainingAmount)),
		slotVariables(booking))
}

// SendPaymentReleased tells the business its share of a completed booking has
// been approved for payout.
func (s *MailjetNotificationService) SendPaymentReleased(business *models.Business, booking *models.Booking) {
	vars := slotVariables(booking)
	vars["amount"] = formatAmount(booking.ServiceAmount())

	s.send(business.Email, business.Name,
		"Payment released",
		fmt.Sprintf("Payment of %s for the booking on %s has been approved for payout to your account.",
			formatAmount(booking.ServiceAmount()), booking.TimeSlot.Date),
		vars)
}

// SendPasswordReset emails a single-use reset token.
func (s *MailjetNotificationService) SendPasswordReset(user *models.User, resetToken string) {
	s.send(user.Email, user.Username,
		"Reset your password",
		fmt.Sprintf("Use this token to reset your password: %s. It expires in 30 minutes.", resetToken),
		map[string]interface{}{"token": resetToken})
}
