package booking

import (
	"fmt"

	"ouiimi/config"
	"ouiimi/models"
	"ouiimi/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// Checkout creates a gateway checkout session for a pending booking's deposit.
// The session carries two line items, the deposit and the platform fee, in
// integer minor units. The session and payment-intent identifiers are
// persisted on the booking so confirmation calls can locate it later.
func (s *DefaultBookingService) Checkout(bookingID string) (*models.CheckoutSession, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("Checkout: failed to fetch booking", zap.Error(err))
		return nil, fmt.Errorf("checkout failed, please try again")
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Status != models.BookingPending {
		return nil, &ConflictError{Message: fmt.Sprintf("booking is %s and cannot be paid", b.Status)}
	}
	if b.PaymentStatus == models.PaymentDepositPaid {
		return nil, &ConflictError{Message: "deposit already paid"}
	}

	fee := PlatformFeeOrDefault(b.PlatformFee)
	currency := config.AppConfig.Currency

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL + "?bookingId=" + b.ID),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL + "?bookingId=" + b.ID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Booking deposit"),
					},
					UnitAmount: stripe.Int64(ToCents(b.DepositAmount)),
				},
				Quantity: stripe.Int64(1),
			},
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Service fee"),
					},
					UnitAmount: stripe.Int64(ToCents(fee)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"booking_id": b.ID},
		},
		Metadata: map[string]string{"booking_id": b.ID},
	}
	params.AddExpand("payment_intent")

	sess, err := session.New(params)
	if err != nil {
		utils.GetLogger().Error("Checkout: gateway session creation failed",
			zap.String("bookingId", b.ID), zap.Error(err))
		return nil, fmt.Errorf("payment gateway error, please try again")
	}

	intentID := ""
	if sess.PaymentIntent != nil {
		intentID = sess.PaymentIntent.ID
	}

	if err := s.Repo.SetPaymentRefs(b.ID, intentID, sess.ID); err != nil {
		utils.GetLogger().Error("Checkout: failed to persist payment refs",
			zap.String("bookingId", b.ID), zap.Error(err))
		return nil, fmt.Errorf("checkout failed, please try again")
	}

	return &models.CheckoutSession{
		SessionID:       sess.ID,
		URL:             sess.URL,
		PaymentIntentID: intentID,
		AmountTotal:     ToCents(b.DepositAmount) + ToCents(fee),
		Currency:        currency,
	}, nil
}
