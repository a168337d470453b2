package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"ouiimi/config"
	"ouiimi/services/booking"
	"ouiimi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// PaymentHandler exposes the deposit checkout and gateway callback endpoints.
type PaymentHandler struct {
	BookingService booking.BookingService
}

func NewPaymentHandler(svc booking.BookingService) *PaymentHandler {
	return &PaymentHandler{BookingService: svc}
}

// CheckoutHandler handles POST /bookings/:id/checkout, creating a hosted
// checkout session for the deposit plus service fee.
func (h *PaymentHandler) CheckoutHandler(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	session, err := h.BookingService.Checkout(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// ConfirmPaymentHandler handles POST /payments/confirm, the synchronous
// confirmation path used when the client returns from checkout before the
// webhook lands. Confirming an already-confirmed booking is a no-op.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	confirmed, err := h.BookingService.ConfirmPayment(req.PaymentIntentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// WebhookHandler handles POST /payments/webhook. The signature is verified
// against the raw body; a verified event always gets a 200 so the gateway
// does not retry events we have already absorbed.
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error("webhook: failed to read body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("webhook: signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			logger.Error("webhook: failed to parse payment intent", zap.Error(err))
			break
		}
		h.BookingService.HandlePaymentSucceeded(intent.ID)

	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			logger.Error("webhook: failed to parse checkout session", zap.Error(err))
			break
		}
		if session.PaymentIntent != nil {
			h.BookingService.HandlePaymentSucceeded(session.PaymentIntent.ID)
		}

	default:
		logger.Debug("webhook: ignoring event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
