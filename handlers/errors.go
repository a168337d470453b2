package handlers

import (
	"errors"
	"net/http"

	"ouiimi/services/admin"
	"ouiimi/services/booking"
	"ouiimi/services/business"
	"ouiimi/services/user"
	"ouiimi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates typed service errors into HTTP responses.
// Unrecognized errors become a generic 500 so internals never leak.
func respondServiceError(c *gin.Context, err error) {
	var (
		bookingNotFound  *booking.NotFoundError
		bookingConflict  *booking.ConflictError
		bookingForbidden *booking.ForbiddenError
		paymentPending   *booking.PaymentNotSucceededError
		badTransition    *booking.InvalidTransitionError

		bizNotFound   *business.NotFoundError
		bizForbidden  *business.ForbiddenError
		bizConflict   *business.ConflictError
		bizValidation *business.ValidationError

		userConflict   *user.ConflictError
		userValidation *user.ValidationError

		adminNotFound *admin.NotFoundError
	)

	switch {
	case errors.As(err, &bookingNotFound),
		errors.As(err, &bizNotFound),
		errors.As(err, &adminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.As(err, &bookingForbidden),
		errors.As(err, &bizForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.As(err, &bookingConflict),
		errors.As(err, &bizConflict),
		errors.As(err, &userConflict),
		errors.As(err, &paymentPending),
		errors.As(err, &badTransition),
		errors.As(err, &bizValidation),
		errors.As(err, &userValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// callerID pulls the authenticated user ID set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return idStr, true
}
