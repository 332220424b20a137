package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Application Layer
	"reminder-notifier/internal/application/notification"
	appService "reminder-notifier/internal/application/service"

	// Infrastructure Layer
	"reminder-notifier/internal/infrastructure/channel"
	"reminder-notifier/internal/infrastructure/database/sqlite"
	"reminder-notifier/internal/infrastructure/scheduler"

	// Interfaces Layer
	"reminder-notifier/internal/interfaces/api/handler"
	"reminder-notifier/internal/interfaces/api/router"

	// Packages
	"reminder-notifier/internal/pkg/config"
	appLogger "reminder-notifier/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

func gracefulShutdown(
	ctx context.Context,
	apiServer *http.Server,
	schedulerService appService.SchedulerService,
	db *gorm.DB,
	cfg config.ServerConfig,
	log appLogger.Logger,
	done chan bool,
) {
	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first: it waits for in-flight runs so none writes to a closed database
	log.Info("Stopping scheduler...")
	schedulerService.Stop()
	log.Info("Scheduler stopped.")

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown with error", err)
	}

	// Close database connection
	log.Info("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Error("Error closing database", err)
	} else {
		log.Info("Database connection closed.")
	}

	log.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLog := appLogger.New(appLogger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	appLog.Info("Logger initialized.")

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	db, err := sqlite.NewDB(sqlite.Options{
		URL:           cfg.Database.URL,
		SlowThreshold: cfg.Database.SlowThreshold,
	}, appLog)
	if err != nil {
		appLog.Error("Failed to open database", err)
		os.Exit(1)
	}
	userRepo := sqlite.NewUserRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	appLog.Info("Database and repositories initialized.")

	deliveryChannel, err := channel.New(cfg, appLog)
	if err != nil {
		appLog.Error("Failed to initialize delivery channel", err)
		os.Exit(1)
	}
	appLog.Info(fmt.Sprintf("Delivery channel: %s", deliveryChannel.Name()))

	cronScheduler := scheduler.NewScheduler(scheduler.Options{SkipIfRunning: cfg.Scheduler.SkipIfRunning}, appLog)

	// --- Application Services ---
	renderer := notification.NewRenderer(cfg.Delivery.Location())
	deliverySvc := appService.NewDeliveryService(reminderRepo, deliveryChannel, renderer, appService.DeliveryOptions{
		Concurrency: cfg.Delivery.Concurrency,
		SendTimeout: cfg.Delivery.SendTimeout,
	}, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, deliverySvc, cfg.Scheduler.Spec, appLog)
	userSvc := appService.NewUserService(userRepo, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, userRepo, deliveryChannel.Name() == config.ChannelLine, appLog)
	appLog.Info("Application services initialized.")

	// --- Initialize Schedules ---
	if err := schedulerSvc.Start(ctx); err != nil {
		appLog.Error("Failed to schedule delivery runs", err)
		os.Exit(1)
	}
	if cfg.Scheduler.RunOnStartup {
		// Catch up on reminders that fell due while the process was down.
		// Stop waits for this run, so it finishes before the database closes.
		go func() {
			if _, err := schedulerSvc.RunNow(ctx); err != nil {
				appLog.Error("Startup delivery run failed", err)
			}
		}()
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler: handler.NewReminderHandler(reminderSvc, appLog),
		UserHandler:     handler.NewUserHandler(userSvc, appLog),
		RunHandler:      handler.NewRunHandler(schedulerSvc),
		Logger:          appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      echoRouter,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(ctx, apiServer, schedulerSvc, db, cfg.Server, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.Error("HTTP server ListenAndServe error", err)
		os.Exit(1)
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
