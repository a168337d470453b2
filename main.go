package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ouiimi/config"
	"ouiimi/cron"
	"ouiimi/database"
	bookingRepoPkg "ouiimi/database/repository/booking"
	businessRepoPkg "ouiimi/database/repository/business"
	forgetpassRepoPkg "ouiimi/database/repository/forgetpass"
	serviceRepoPkg "ouiimi/database/repository/service"
	userRepoPkg "ouiimi/database/repository/user"
	"ouiimi/handlers"
	"ouiimi/middleware"
	"ouiimi/routes"
	"ouiimi/services/admin"
	"ouiimi/services/booking"
	"ouiimi/services/business"
	"ouiimi/services/notification"
	"ouiimi/services/tasks"
	"ouiimi/services/user"
	"ouiimi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.RegisterValidators()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	forgetpassRepo := forgetpassRepoPkg.NewMongoForgetPassRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	staffRepo := businessRepoPkg.NewMongoStaffRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	notificationService := notification.NewMailjetNotificationService()
	scheduler := tasks.NewAsynqScheduler()

	userService := &user.DefaultUserService{
		Repo:           userRepo,
		ForgetPassRepo: forgetpassRepo,
		Notification:   notificationService,
	}
	businessService := &business.DefaultBusinessService{
		Repo:        businessRepo,
		StaffRepo:   staffRepo,
		ServiceRepo: serviceRepo,
		UserRepo:    userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ServiceRepo:  serviceRepo,
		BusinessRepo: businessRepo,
		StaffRepo:    staffRepo,
		UserRepo:     userRepo,
		Notification: notificationService,
		Scheduler:    scheduler,
	}
	adminService := &admin.DefaultAdminService{
		BookingRepo:  bookingRepo,
		BusinessRepo: businessRepo,
		Notification: notificationService,
	}

	// Background worker for reminders and booking completion.
	cron.InitBookingWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		User:     handlers.NewUserHandler(userService),
		Business: handlers.NewBusinessHandler(businessService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Payment:  handlers.NewPaymentHandler(bookingService),
		Admin:    handlers.NewAdminHandler(adminService, userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
