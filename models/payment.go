package models

// CheckoutSession is returned to the client after a gateway checkout session
// has been created for a booking's deposit.
type CheckoutSession struct {
	SessionID       string `json:"sessionId"`
	URL             string `json:"url"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	AmountTotal     int64  `json:"amountTotal"` // minor currency units
	Currency        string `json:"currency"`
}

// ReminderPayload is the asynq task payload for booking reminder emails.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// CompletePayload is the asynq task payload for auto-completing an elapsed booking.
type CompletePayload struct {
	BookingID string `json:"bookingId"`
}
