package handlers

import (
	userRepoPkg "ouiimi/database/repository/user"
)

// HandlerBundle groups the endpoint handlers and the repositories the
// middleware needs, so route registration takes a single value.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User     *UserHandler
	Business *BusinessHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Admin    *AdminHandler
}
