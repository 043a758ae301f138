package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"device_library/internal/catalog"
	"device_library/internal/client"
	"device_library/internal/config"
	"device_library/internal/handlers"
	"device_library/internal/logger"
	"device_library/internal/repository"
	"device_library/internal/repository/db"
	"device_library/internal/server"
	"device_library/internal/service"
)

// @title        Device Library API
// @version      1.0
// @description  Board catalog, device discovery reconciliation and selection for the block IDE.
// @BasePath     /
func main() {
	// load configs/config.yml + DEVLIB_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.Config{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// static catalog, optionally extended from a file
	cat, err := catalog.FromFile(cfg.Catalog.ExtraPath)
	if err != nil {
		log.Fatalw("failed to load device catalog", "err", err, "path", cfg.Catalog.ExtraPath)
	}
	log.Infow("device catalog loaded", "devices", cat.Len())

	// outbound clients
	vm, err := client.NewVMBridge(clientOptions(cfg.VM), log.Named("vm"))
	if err != nil {
		log.Fatalw("invalid vm client config", "err", err)
	}
	kits, err := client.NewEntitlementClient(clientOptions(cfg.Entitlement), log.Named("entitlement"))
	if err != nil {
		log.Fatalw("invalid entitlement client config", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, cat, vm, kits, log)
	apiHandler := handlers.NewHandler(services, log.Named("http")).
		WithStreamInterval(cfg.Stream.DefaultInterval, cfg.Stream.MaxInterval)

	// warm the device list; failures fall back to the catalog
	ctx, cancel := context.WithTimeout(context.Background(), cfg.VM.Timeout*2)
	if _, err := services.Library.Refresh(ctx); err != nil {
		log.Warnw("initial device refresh failed", "err", err)
	}
	cancel()

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	dbPath := cfg.DB.Path
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "devices.db")
		dbPath = "devices.db"
	}
	return db.InitDB(dbPath)
}

func clientOptions(c config.ClientConfig) client.Options {
	return client.Options{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Retries: c.Retries,
		Backoff: c.Backoff,
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
