package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ouiimi/models"
	"ouiimi/services/booking"

	"github.com/gin-gonic/gin"
)

type stubBookingService struct {
	succeededCalls int
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) GetBooking(id string) (*models.BookingView, error) { return nil, nil }
func (s *stubBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) GetBusinessBookings(callerID, businessID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) Checkout(bookingID string) (*models.CheckoutSession, error) {
	return nil, nil
}
func (s *stubBookingService) ConfirmPayment(paymentIntentID string) (*models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) HandlePaymentSucceeded(paymentIntentID string) { s.succeededCalls++ }
func (s *stubBookingService) Cancel(bookingID, callerID string) (*models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) CompleteBooking(bookingID string) error { return nil }
func (s *stubBookingService) SendReminder(bookingID string) error    { return nil }

// An event whose signature does not verify must be rejected outright; nothing
// downstream may run on an unverified payload.
func TestWebhookRejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubBookingService{}
	h := NewPaymentHandler(stub)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(body))
	c.Request.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")

	h.WebhookHandler(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if stub.succeededCalls != 0 {
		t.Errorf("HandlePaymentSucceeded called %d times on an unverified event, want 0", stub.succeededCalls)
	}
}
