package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"booking-backend/config"
	"booking-backend/internal/api"
	"booking-backend/internal/booking"
	"booking-backend/internal/msgraph"
	"booking-backend/internal/notify"
	"booking-backend/internal/schedule"
	"booking-backend/internal/spamguard"
	"booking-backend/internal/turnstile"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "bookingd ", log.LstdFlags)

	// Load .env if present; secrets may also come from the real environment.
	if err := godotenv.Load(); err != nil {
		logger.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Calendar and mail both run through the MS365 tenant application;
	// without credentials there is nothing this service can do.
	if cfg.Graph.TenantID == "" || cfg.Graph.ClientID == "" || cfg.Graph.ClientSecret == "" || cfg.Graph.UserEmail == "" {
		logger.Fatalf("MS365 credentials must be configured (tenant_id, client_id, client_secret, user_email)")
	}

	graphClient := msgraph.NewClient(cfg.Graph.TenantID, cfg.Graph.ClientID, cfg.Graph.ClientSecret, cfg.Graph.UserEmail)

	calc := schedule.NewCalculator(cfg.Scheduling.Hours, cfg.Scheduling.Location)

	limiter := spamguard.NewRateLimiter(
		cfg.SpamGuard.MaxRequests,
		time.Duration(cfg.SpamGuard.WindowMinutes)*time.Minute,
		time.Duration(cfg.SpamGuard.SweepMinutes)*time.Minute,
	)
	guard := spamguard.NewGuard(limiter, nil)

	policy := turnstile.FailClosed
	if cfg.Server.Env == config.EnvDevelopment {
		policy = turnstile.FailOpen
	}
	verifier := turnstile.New(cfg.Turnstile.SecretKey, policy)
	if verifier.Enabled() {
		logger.Printf("Turnstile protection: ENABLED")
	} else {
		logger.Printf("Turnstile protection: DISABLED (missing secret, policy %s)", policy)
	}

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Email delivery runs in the background so a slow mailbox never holds
	// up a booking response.
	pool := notify.NewWorkerPool(cfg.WorkerPool.Size, graphClient)
	pool.Start(ctx)
	mailer := notify.NewMailer(pool, cfg.Graph.UserEmail, cfg.Business.Name, cfg.Business.SiteURL, cfg.Scheduling.Location)

	svc := booking.NewService(calc, graphClient, guard, verifier, mailer, cfg.Business.SiteURL)

	// Initialize router
	router := api.NewRouter(svc, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
