package handlers

import (
	"net/http"
	"time"

	"ouiimi/services/admin"
	"ouiimi/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the operator endpoints. The routes are gated by the
// admin role middleware.
type AdminHandler struct {
	AdminService admin.AdminService
	UserService  user.UserService
}

func NewAdminHandler(adminSvc admin.AdminService, userSvc user.UserService) *AdminHandler {
	return &AdminHandler{AdminService: adminSvc, UserService: userSvc}
}

// PendingPaymentsHandler handles GET /admin/payments/pending: confirmed
// bookings whose slot has elapsed and whose business share awaits release.
func (h *AdminHandler) PendingPaymentsHandler(c *gin.Context) {
	pending, err := h.AdminService.PendingPayments(time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// ReleasePaymentHandler handles POST /admin/payments/:id/release.
func (h *AdminHandler) ReleasePaymentHandler(c *gin.Context) {
	released, err := h.AdminService.ReleasePayment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, released)
}

// ListUsersHandler handles GET /admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
