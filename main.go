package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afspraak/config"
	"afspraak/cron"
	"afspraak/database"
	blackoutRepoPkg "afspraak/database/repository/blackout"
	bookingRepoPkg "afspraak/database/repository/booking"
	messageRepoPkg "afspraak/database/repository/message"
	"afspraak/handlers"
	"afspraak/middleware"
	"afspraak/routes"
	"afspraak/services/admin"
	"afspraak/services/booking"
	"afspraak/services/notification"
	"afspraak/services/tasks"
	"afspraak/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Backing store: MongoDB by default, Firebase RTDB when configured.
	// Firebase is also initialized for FCM pushes whenever credentials exist.
	if config.AppConfig.StoreBackend != "firebase" {
		database.InitDB()
	}
	if config.AppConfig.StoreBackend == "firebase" || config.AppConfig.FirebaseCredentialsFile != "" {
		utils.FirebaseInit()
	}
	utils.InitSessionCache()
	utils.InitAuthCache()

	// Repositories.
	bookingRepo := bookingRepoPkg.NewRepo()
	blackoutRepo := blackoutRepoPkg.NewRepo()
	messageRepo := messageRepoPkg.NewRepo()

	if err := bookingRepoPkg.EnsureBookingIndexes(bookingRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	hours, err := booking.HoursFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid office hours configuration: %v", err)
	}

	// Optional collaborators: reminders and admin pushes need FCM and the
	// reminder queue; the booking flow works without them.
	var notifSvc notification.NotificationService
	if svc, err := notification.NewDefaultNotificationService(); err != nil {
		logger.Sugar().Warnf("main: push notifications disabled: %v", err)
	} else {
		notifSvc = svc
	}

	var reminders booking.ReminderScheduler
	if notifSvc != nil {
		reminders = tasks.NewScheduler()
		cron.InitReminderWorker(notifSvc)
	}

	// Services.
	bookingService := &booking.DefaultBookingService{
		BookingRepo:  bookingRepo,
		BlackoutRepo: blackoutRepo,
		MessageRepo:  messageRepo,
		Engine:       booking.Engine{Hours: hours},
		SessionCache: utils.GetSessionCacheClient(),
		SessionTTL:   time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Reminders:    reminders,
		Notifier:     notifSvc,
	}

	adminService := &admin.DefaultAdminService{
		BookingRepo:  bookingRepo,
		BlackoutRepo: blackoutRepo,
		MessageRepo:  messageRepo,
		AuthCache:    utils.GetAuthCacheClient(),
	}

	// Handlers.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(bookingService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Contact:      handlers.NewContactHandler(bookingService),
		Admin:        handlers.NewAdminHandler(adminService),
	}

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

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
