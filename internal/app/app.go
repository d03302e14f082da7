// Package app wires configuration, logging, the database, the router and
// the HTTP server into one runnable service. The binaries under cmd/ differ
// only in the routes they register; everything else is common and lives
// here.
package app

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/bunshock/hipbank/internal/config"
	"github.com/bunshock/hipbank/internal/platform/logger"
)

// RegisterRoutesFunc builds a service's handlers from the shared
// dependencies and mounts them on the router.
type RegisterRoutesFunc func(r chi.Router, deps *Dependencies) error

// Run is the shared entry point of every service binary. It loads config,
// sets up logging, runs migrations when the -migrate flag is given, and
// otherwise opens the database and serves HTTP until shutdown.
func Run(serviceName string, register RegisterRoutesFunc) error {
	migrateCommand := flag.String("migrate", "",
		"run database migrations (up, down, status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With(slog.String("service", serviceName))

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if *migrateCommand != "" {
		return runMigrations(cfg, log, *migrateCommand)
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}()

	deps := &Dependencies{
		Config: cfg,
		Logger: log,
		DB:     db,
	}
	router, err := newRouter(deps, register)
	if err != nil {
		return err
	}

	return serve(cfg, log, router)
}
