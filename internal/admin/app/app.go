package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/karrieremum/adminsvc/internal/admin/http"
	"github.com/karrieremum/adminsvc/internal/admin/i18n"
	"github.com/karrieremum/adminsvc/internal/admin/mailer"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/service"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/internal/admin/store/drivers/sqlite"
	"github.com/karrieremum/adminsvc/pkg/jwtx"
	"github.com/karrieremum/adminsvc/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
)

// BuildVersion is stamped via -ldflags "-X ...app.BuildVersion=..." in
// release builds.
var BuildVersion = "v0.1.0"

// Application encapsulates the admin service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier
	mailer   mailer.Mailer
	registry *prometheus.Registry
	metrics  metrics.Collector

	// Services
	usersService        *service.UsersService
	inviteService       *service.InviteService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "admin-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.ClientDomain == "" {
		return nil, fmt.Errorf("DOMAIN_CLIENT is required to build registration links")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	verifier, err := jwtx.LoadVerifierEdDSA(cfg.VerifyKeyFile, cfg.Issuer, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load token verify key: %w", err)
	}
	app.verifier = verifier

	if err := app.initMailer(); err != nil {
		return nil, err
	}

	app.registry = prometheus.NewRegistry()
	app.metrics = metrics.NewPromCollector(app.registry)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("admin service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down admin service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("admin service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer selects the mail driver from configuration
func (app *Application) initMailer() error {
	switch app.cfg.MailerDriver {
	case "smtp":
		if app.cfg.SMTPHost == "" || app.cfg.SMTPFrom == "" {
			return fmt.Errorf("SMTP_HOST and SMTP_FROM are required for the smtp mailer")
		}
		app.mailer = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
			From:     app.cfg.SMTPFrom,
			Timeout:  app.cfg.SMTPTimeout,
			Insecure: app.cfg.SMTPInsecure,
		})
	case "log":
		app.mailer = mailer.NewLogMailer()
		app.logger.Warn("using log mailer, invite mails will not be delivered")
	default:
		return fmt.Errorf("unknown mailer driver %q (want smtp or log)", app.cfg.MailerDriver)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	links := service.LinkConfig{
		ClientDomain: app.cfg.ClientDomain,
		AppName:      app.cfg.AppTitle,
		InviteTTL:    app.cfg.InviteTTL,
		MailLocale:   i18n.ParseTag(app.cfg.MailLocale),
	}

	app.usersService = &service.UsersService{
		Store:   app.db,
		Metrics: app.metrics,
	}
	app.inviteService = &service.InviteService{
		Store:   app.db,
		Mailer:  app.mailer,
		Metrics: app.metrics,
		Links:   links,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.registry,
		app.logger,
	)

	// Wire services to router
	router.UsersService = app.usersService
	router.InviteService = app.inviteService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
