package routes

import (
	"net/http"
	"time"

	"ouiimi/handlers"
	"ouiimi/middleware"
	"ouiimi/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)
		api.POST("/forgot-password", hb.User.ForgotPasswordHandler)
		api.POST("/reset-password", hb.User.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterBusinessRoutes registers business, staff, and catalogue endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		// Public catalogue endpoints.
		api.GET("", hb.Business.ListBusinessesHandler)
		api.GET("/:id", hb.Business.GetBusinessHandler)
		api.GET("/:id/services", hb.Business.ListServicesHandler)
		api.GET("/:id/staff", hb.Business.ListStaffHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Business.RegisterBusinessHandler)
		protected.GET("/mine", hb.Business.GetMyBusinessHandler)
		protected.PUT("/:id", hb.Business.UpdateBusinessHandler)
		protected.POST("/:id/staff", hb.Business.AddStaffHandler)
		protected.POST("/:id/services", hb.Business.CreateServiceHandler)
		protected.GET("/:id/bookings", hb.Booking.GetBusinessBookingsHandler)
	}

	staff := r.Group("/api/staff")
	{
		staff.Use(middleware.AuthMiddleware(hb.UserRepo))
		staff.PUT("/:id", hb.Business.UpdateStaffHandler)
		staff.DELETE("/:id", hb.Business.DeactivateStaffHandler)
	}

	services := r.Group("/api/services")
	{
		services.GET("/:id", hb.Business.GetServiceHandler)

		protected := services.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.PUT("/:id", hb.Business.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Business.DeleteServiceHandler)
		protected.PUT("/:id/timeslots", hb.Business.ReplaceTimeSlotsHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/mine", hb.Booking.GetMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/checkout", hb.Payment.CheckoutHandler)
	}
}

// RegisterPaymentRoutes registers gateway endpoints. The webhook stays outside
// the auth middleware; its authenticity comes from signature verification.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/webhook", hb.Payment.WebhookHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("/confirm", hb.Payment.ConfirmPaymentHandler)
	}
}

// RegisterAdminRoutes registers operator endpoints behind the admin role gate.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/payments/pending", hb.Admin.PendingPaymentsHandler)
		api.POST("/payments/:id/release", hb.Admin.ReleasePaymentHandler)
		api.GET("/users", hb.Admin.ListUsersHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
