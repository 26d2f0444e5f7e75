package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	httpapi "github.com/aussiebroadwan/clientbook/internal/clients/http"
	"github.com/aussiebroadwan/clientbook/internal/clients/seed"
	"github.com/aussiebroadwan/clientbook/internal/clients/service"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"
)

const (
	BuildVersion = "v0.1.0"
	ServiceName  = "clients-service"
)

type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	clientService *service.ClientService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: ServiceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if cfg.SeedFile != "" {
		if err := app.seed(cfg.SeedFile); err != nil {
			_ = app.db.Close()
			return nil, err
		}
	}

	app.initHTTP()
	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

func (app *Application) Run() error {
	app.logger.Info("clients service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clients service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clients service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() {
	app.clientService = &service.ClientService{Store: app.db}
}

// seed loads the fixtures at path into an empty clients table. A table that
// already holds rows is left alone so restarts do not duplicate them.
func (app *Application) seed(path string) error {
	ctx := slogx.WithContext(context.Background(), app.logger)

	existing, err := app.db.Clients().FindAll(ctx, domain.NewPageRequest(0, 1))
	if err != nil {
		return fmt.Errorf("failed to count clients before seeding: %w", err)
	}
	if existing.TotalElements > 0 {
		app.logger.Info("clients table not empty, skipping seed", "file", path, "clients", existing.TotalElements)
		return nil
	}

	_, err = SeedStore(ctx, app.db, path)
	return err
}

// SeedStore inserts every client listed in the fixtures file at path.
func SeedStore(ctx context.Context, st store.Store, path string) ([]domain.ClientDTO, error) {
	fixtures, err := seed.Load(path)
	if err != nil {
		return nil, err
	}
	return seed.Apply(ctx, &service.ClientService{Store: st}, fixtures)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.ClientService = app.clientService
	router.ReadLimit = app.cfg.ReadLimit
	router.WriteLimit = app.cfg.WriteLimit
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
