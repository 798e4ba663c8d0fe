package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mjdigitalmedia/agency-api/internal/auth"
	"github.com/mjdigitalmedia/agency-api/internal/config"
	"github.com/mjdigitalmedia/agency-api/internal/database"
	"github.com/mjdigitalmedia/agency-api/internal/http/handler"
	"github.com/mjdigitalmedia/agency-api/internal/http/middleware"
	"github.com/mjdigitalmedia/agency-api/internal/http/router"
	"github.com/mjdigitalmedia/agency-api/internal/logger"
	"github.com/mjdigitalmedia/agency-api/internal/notify"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/mjdigitalmedia/agency-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be configured")
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Production schemas are managed by the goose migrations; auto-migrate is
	// a development convenience only
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate schema: %w", err)
		}
	}

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Notification provider chain: SendGrid first, SMTP relay as fallback.
	// Unconfigured providers come back nil and are skipped by the dispatcher.
	sendgridSender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.Mail.SendGridAPIKey,
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
	}, log)
	smtpSender := notify.NewSMTPSender(notify.SMTPConfig{
		Host:      cfg.Mail.SMTPHost,
		Port:      cfg.Mail.SMTPPort,
		User:      cfg.Mail.SMTPUser,
		Password:  cfg.Mail.SMTPPassword,
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
	}, log)
	dispatcher := notify.NewDispatcher(log, sendgridSender, smtpSender)
	if !dispatcher.Configured() {
		log.Warn("no notification provider configured, form submissions will not reach the admin inbox")
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDuration())
	leadService := service.NewLeadService(leadRepo, dispatcher, cfg.Mail.AdminEmail, log)
	portfolioService := service.NewPortfolioService(portfolioRepo, log)
	videoService := service.NewVideoService(videoRepo, log)
	inquiryService := service.NewInquiryService(dispatcher, cfg.Mail.AdminEmail, log)
	authService := service.NewAuthService(userRepo, tokens, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, log)
	leadHandler := handler.NewLeadHandler(leadService, log)
	dashboardHandler := handler.NewDashboardHandler(leadService, log)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, log)
	videoHandler := handler.NewVideoHandler(videoService, log)
	inquiryHandler := handler.NewInquiryHandler(inquiryService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		authHandler,
		leadHandler,
		dashboardHandler,
		portfolioHandler,
		videoHandler,
		inquiryHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
