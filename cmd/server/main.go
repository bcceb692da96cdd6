// Command server runs the campus events API.
//
// @title Campus Events API
// @version 1.0
// @description Multi-tenant campus event management backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"campusevents/config"
	authadapter "campusevents/internal/adapters/auth"
	emailadapter "campusevents/internal/adapters/email"
	"campusevents/internal/adapters/ticket"
	delivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	hasher := authadapter.NewBcryptHasher(0)
	issuer, verifier := authadapter.NewJWTCodec(cfg.JWTSecret)
	ticketRenderer := ticket.NewQRRenderer()
	mailer := emailadapter.NewMailer(cfg.Email, logger)
	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	authSvc := services.NewAuthService(userRepo, hasher, issuer, cfg.TokenTTL)
	userSvc := services.NewUserService(userRepo)
	eventSvc := services.NewEventService(eventRepo)
	registrationSvc := services.NewRegistrationService(eventRepo, registrationRepo, ticketRenderer, emailSvc, logger)
	feedbackSvc := services.NewFeedbackService(eventRepo, feedbackRepo)
	analyticsSvc := services.NewAnalyticsService(eventRepo, userRepo, registrationRepo, feedbackRepo)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authSvc),
		User:         controllers.NewUserController(logger, userSvc, authSvc),
		Event:        controllers.NewEventController(logger, eventSvc, authSvc),
		Registration: controllers.NewRegistrationController(logger, registrationSvc, authSvc),
		Feedback:     controllers.NewFeedbackController(logger, feedbackSvc, authSvc),
		Analytics:    controllers.NewAnalyticsController(logger, analyticsSvc, authSvc),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
