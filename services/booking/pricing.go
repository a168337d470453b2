package booking

import (
	"math"

	"ouiimi/config"
)

// depositRate is the fraction of the service cost paid up front through the
// platform; the remainder is settled directly with the business.
const depositRate = 0.10

// round2 rounds to two decimal places (cent precision in major units).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToCents converts a major-unit amount to integer minor units. Rounding, not
// truncation: truncating would systematically undercharge.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// DepositFor computes the up-front deposit for a service cost.
func DepositFor(totalCost float64) float64 {
	return round2(totalCost * depositRate)
}

// PlatformFeeOrDefault falls back to the configured flat fee when a booking
// carries no fee of its own.
func PlatformFeeOrDefault(fee float64) float64 {
	if fee > 0 {
		return fee
	}
	return config.AppConfig.PlatformFee
}

// CustomerCancelRefund is the refund owed when the customer cancels: half the
// deposit (the business keeps the other half, the service fee is forfeited).
func CustomerCancelRefund(depositAmount float64) float64 {
	return round2(depositAmount * 0.5)
}

// BusinessCancelRefund is the refund owed when the business cancels: the full
// deposit (the service fee remains non-refundable).
func BusinessCancelRefund(depositAmount float64) float64 {
	return depositAmount
}
