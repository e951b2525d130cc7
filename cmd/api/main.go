package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/karinanutri/clinic-platform/internal/api/router"
	"github.com/karinanutri/clinic-platform/internal/appointments"
	"github.com/karinanutri/clinic-platform/internal/auth"
	"github.com/karinanutri/clinic-platform/internal/availability"
	"github.com/karinanutri/clinic-platform/internal/booking"
	"github.com/karinanutri/clinic-platform/internal/calculators"
	"github.com/karinanutri/clinic-platform/internal/clients"
	appconfig "github.com/karinanutri/clinic-platform/internal/config"
	"github.com/karinanutri/clinic-platform/internal/finance"
	"github.com/karinanutri/clinic-platform/internal/kanban"
	"github.com/karinanutri/clinic-platform/internal/messaging"
	"github.com/karinanutri/clinic-platform/internal/observability/metrics"
	"github.com/karinanutri/clinic-platform/internal/reports"
	"github.com/karinanutri/clinic-platform/internal/settings"
	"github.com/karinanutri/clinic-platform/internal/store"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

func main() {
	// Load .env in development; ignored when absent.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Practice timezone drives all same-day availability decisions.
	loc, err := time.LoadLocation(cfg.ClinicTimezone)
	if err != nil {
		logger.Error("invalid clinic timezone", "error", err, "timezone", cfg.ClinicTimezone)
		os.Exit(1)
	}

	// Redis-backed collection store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis connection failed", "error", err, "addr", cfg.RedisAddr)
		os.Exit(1)
	}

	st := store.New(redisClient, logger)
	clientsRepo := clients.NewRepository(st)
	appointmentsRepo := appointments.NewRepository(st)
	financesRepo := finance.NewRepository(st)
	reportsRepo := reports.NewRepository(st)
	kanbanRepo := kanban.NewRepository(st)
	settingsStore := settings.NewStore(st)

	engine := availability.NewEngine(loc)

	// Gemini is optional; without an API key every message uses its local
	// fallback template.
	var generator messaging.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := messaging.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Warn("gemini client unavailable, using fallback messages", "error", err)
		} else {
			defer gemini.Close()
			generator = gemini
		}
	}
	messagingService := messaging.NewService(generator, logger)

	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)

	bookingService := booking.NewService(st, clientsRepo, appointmentsRepo, financesRepo, settingsStore, engine, cfg.MeetLinkBase, logger)
	authService := auth.NewService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminJWTSecret, cfg.AdminTokenTTL)

	// Initialize handlers
	routerCfg := &router.Config{
		Logger:              logger,
		AuthHandler:         auth.NewHandler(authService, logger),
		BookingHandler:      booking.NewHandler(bookingService, messagingService, bookingMetrics, logger),
		CalculatorsHandler:  calculators.NewHandler(),
		ClientsHandler:      clients.NewHandler(clientsRepo, logger),
		AppointmentsHandler: appointments.NewHandler(appointmentsRepo, logger),
		FinanceHandler:      finance.NewHandler(financesRepo, logger),
		ReportsHandler:      reports.NewHandler(reportsRepo, logger),
		KanbanHandler:       kanban.NewHandler(kanbanRepo, logger),
		SettingsHandler:     settings.NewHandler(settingsStore, logger),
		MessagingHandler:    messaging.NewHandler(messagingService, clientsRepo, appointmentsRepo, bookingMetrics, logger),
		AdminAuthSecret:     cfg.AdminJWTSecret,
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
