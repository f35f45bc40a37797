// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/auth"
	"github.com/dangerclosesec/vizboard/internal/config"
	"github.com/dangerclosesec/vizboard/internal/email"
	"github.com/dangerclosesec/vizboard/internal/handler"
	"github.com/dangerclosesec/vizboard/internal/middleware"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/dangerclosesec/vizboard/internal/service"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			return fmt.Errorf("initializing sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	datasetRepo := repository.NewDatasetRepository(db)
	vizRepo := repository.NewVisualizationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	auditRepo := repository.NewAuthzAuditLogRepository(db)

	// The audit log service records the decisions the authorizer makes
	auditLogService := service.NewAuthzAuditLogService(auditRepo)
	authz := access.NewAuthorizer(teamRepo, auditLogService)
	resolver := access.NewResolver(authz)

	sessions, err := sessionResolver(cfg)
	if err != nil {
		return err
	}

	notifier, err := setupNotifier(cfg)
	if err != nil {
		return err
	}

	// Initialize services
	userService := service.NewUserService(userRepo, authz)
	teamService := service.NewTeamService(teamRepo, userRepo, authz, auditLogService, notifier)
	datasetService := service.NewDatasetService(datasetRepo, teamRepo, authz, resolver)
	vizService := service.NewVisualizationService(vizRepo, datasetRepo, authz, resolver)
	commentService := service.NewCommentService(commentRepo, vizService, authz)

	api := &handler.API{
		Users:          handler.NewUserHandler(userService),
		Teams:          handler.NewTeamHandler(teamService),
		Datasets:       handler.NewDatasetHandler(datasetService, vizService),
		Visualizations: handler.NewVisualizationHandler(vizService),
		Comments:       handler.NewCommentHandler(commentService),
		AuditLogs:      handler.NewAuthzAuditLogHandler(auditLogService),
	}

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", handler.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuditRequest)
		r.Use(middleware.Authenticate(sessions))
		api.Routes(r)
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "sessionProvider", cfg.Session.Provider)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// sessionResolver picks the identity provider: locally issued JWTs, or a
// remote auth service that owns the session cookie.
func sessionResolver(cfg *config.Config) (auth.SessionResolver, error) {
	switch cfg.Session.Provider {
	case config.SessionProviderJWT:
		return auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod, cfg.Session.CookieName), nil
	case config.SessionProviderRemote:
		return auth.NewRemoteSessionResolver(cfg.Session.RemoteURL, cfg.Session.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown session provider %q", cfg.Session.Provider)
	}
}

func setupNotifier(cfg *config.Config) (service.Notifier, error) {
	if !cfg.Notifications.Enabled {
		return service.LogNotifier{}, nil
	}

	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Notifications.Provider))
	if err != nil {
		return nil, fmt.Errorf("initializing email service: %w", err)
	}
	return service.NewEmailNotifier(emailService, cfg.BaseURL), nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.Database.LogLevel)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
