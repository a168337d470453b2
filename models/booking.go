package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks the deposit payment on a booking.
type PaymentStatus string

const (
	PaymentUnpaid            PaymentStatus = "unpaid"
	PaymentDepositPaid       PaymentStatus = "deposit_paid"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

// AdminPaymentStatus tracks whether the operator has released the business's
// share for payout. Release is a bookkeeping flag; the transfer itself is manual.
type AdminPaymentStatus string

const (
	AdminPaymentPending  AdminPaymentStatus = "pending"
	AdminPaymentReleased AdminPaymentStatus = "released"
)

// Booking is the central entity: a customer's reservation of a service slot.
// The timeSlot is a copy of the service slot taken at reservation time.
type Booking struct {
	ID         string   `bson:"id" json:"id"`
	UserID     string   `bson:"user_id" json:"userId"`
	BusinessID string   `bson:"business_id" json:"businessId"`
	ServiceID  string   `bson:"service_id" json:"serviceId"`
	StaffID    string   `bson:"staff_id,omitempty" json:"staffId,omitempty"`
	TimeSlot   TimeSlot `bson:"time_slot" json:"timeSlot"`

	TotalCost       float64 `bson:"total_cost" json:"totalCost"`
	DepositAmount   float64 `bson:"deposit_amount" json:"depositAmount"`
	RemainingAmount float64 `bson:"remaining_amount" json:"remainingAmount"`
	PlatformFee     float64 `bson:"platform_fee" json:"platformFee"`

	Status             BookingStatus      `bson:"status" json:"status"`
	PaymentStatus      PaymentStatus      `bson:"payment_status" json:"paymentStatus"`
	AdminPaymentStatus AdminPaymentStatus `bson:"admin_payment_status,omitempty" json:"adminPaymentStatus,omitempty"`

	PaymentIntentID   string `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	CheckoutSessionID string `bson:"checkout_session_id,omitempty" json:"checkoutSessionId,omitempty"`

	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
	ReleasedAt *time.Time `bson:"released_at,omitempty" json:"releasedAt,omitempty"`
}

// ServiceAmount is the business's share of the booking total. It is derived,
// never stored, so there is exactly one source of truth for the invariant
// serviceAmount = totalCost - platformFee.
func (b *Booking) ServiceAmount() float64 {
	return b.TotalCost - b.PlatformFee
}

// BookingView is the API representation with references resolved into nested
// objects. The repository layer always returns either this fully-resolved view
// or the raw Booking with reference ids, never a mixed shape.
type BookingView struct {
	Booking
	User     *User     `json:"user,omitempty"`
	Business *Business `json:"business,omitempty"`
	Service  *Service  `json:"service,omitempty"`
	Staff    *Staff    `json:"staff,omitempty"`
}
