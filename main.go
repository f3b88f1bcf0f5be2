// File: glamora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glamora/config"
	"glamora/cron"
	"glamora/database"
	adminRepo "glamora/database/repository/admin"
	bookingRepo "glamora/database/repository/booking"
	customerRepo "glamora/database/repository/customer"
	serviceRepo "glamora/database/repository/service"
	stylistRepo "glamora/database/repository/stylist"
	"glamora/handlers"
	"glamora/middleware"
	"glamora/models"
	"glamora/routes"
	"glamora/services/booking"
	"glamora/services/events"
	"glamora/services/payment"
	"glamora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	customers := customerRepo.NewMongoCustomerRepo()
	services := serviceRepo.NewMongoServiceRepo()
	stylists := stylistRepo.NewMongoStylistRepo()
	admins := adminRepo.NewMongoAdminRepo()
	users := adminRepo.NewMongoUserRepo()

	seedAdminAccount(admins, logger)

	// services.
	hub := events.NewHub()

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	sessionService := &booking.DefaultBookingSessionService{
		Store:    sessionStore,
		Catalog:  services,
		Stylists: stylists,
		Logger:   logger,
	}

	submissionService := &booking.DefaultSubmissionService{
		Bookings:  bookings,
		Customers: customers,
		Events:    hub,
		Reminders: cron.NewReminderScheduler(),
		Logger:    logger,
	}

	workflow := &booking.DefaultPaymentWorkflow{
		Store:     sessionStore,
		Submitter: submissionService,
		Gateway:   payment.NewMpesaClient(logger),
		Logger:    logger,
	}

	// Background reminder worker.
	cron.InitReminderWorker(logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(sessionService, workflow, bookings, logger),
		Catalog: handlers.NewCatalogHandler(services, stylists, utils.GetCacheClient(), logger),
		Admin:   handlers.NewAdminHandler(admins, users, services, stylists, bookings, customers, hub, utils.GetCacheClient(), logger),
	}

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

// seedAdminAccount creates the initial dashboard account from configuration
// when no account with that email exists yet.
func seedAdminAccount(admins adminRepo.AdminRepository, logger *zap.Logger) {
	email := config.AppConfig.AdminEmail
	password := config.AppConfig.AdminPassword
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := admins.GetByEmail(ctx, email); err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash admin password", zap.Error(err))
		return
	}
	if _, err := admins.Create(ctx, &models.Admin{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
	}); err != nil {
		logger.Error("failed to seed admin account", zap.Error(err))
		return
	}
	logger.Info("seeded initial admin account", zap.String("email", email))
}
