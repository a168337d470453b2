package handlers

import (
	"net/http"

	"ouiimi/models"
	"ouiimi/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

type createBookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	StaffID   string `json:"staffId"`
	Date      string `json:"date" binding:"required,date"`
	StartTime string `json:"startTime" binding:"required,clock"`
}

// CreateBookingHandler handles POST /bookings. The booking is created pending
// and the slot is claimed atomically; a lost race returns 400.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.BookingService.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		UserID:    userID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		StartTime: req.StartTime,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler handles GET /bookings/:id, returning the fully-resolved
// view. Only the booking's customer or the business owner may read it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	view, err := h.BookingService.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	isOwner := view.Business != nil && view.Business.OwnerID == userID
	if view.UserID != userID && !isOwner && c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot view this booking"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMyBookingsHandler handles GET /bookings/mine.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.GetUserBookings(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBusinessBookingsHandler handles GET /businesses/:id/bookings.
func (h *BookingHandler) GetBusinessBookingsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.GetBusinessBookings(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBookingHandler handles POST /bookings/:id/cancel. The refund rule
// depends on whether the caller is the customer or the business owner.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	cancelled, err := h.BookingService.Cancel(c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
