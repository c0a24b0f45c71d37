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

	_ "asset_maintenance/docs"
	"asset_maintenance/internal/config"
	"asset_maintenance/internal/handlers"
	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/notify"
	"asset_maintenance/internal/repository"
	"asset_maintenance/internal/repository/db"
	"asset_maintenance/internal/repository/memory"
	"asset_maintenance/internal/seed"
	"asset_maintenance/internal/server"
	"asset_maintenance/internal/service"

	"github.com/spf13/pflag"
)

// @title Asset Maintenance API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fs := config.Flags("asset-maintenance")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Get(logger.InfoLevel).Fatalw("invalid flags", "err", err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open storage
	repos, conn, err := openRepository(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init storage", "driver", cfg.DB.Driver, "err", err)
	}
	if conn != nil {
		defer func() {
			if cerr := conn.Close(); cerr != nil {
				log.Errorw("failed to close database", "err", cerr)
			}
		}()
	}

	if cfg.Seed.Path != "" {
		if err := seedStore(cfg.Seed.Path, repos, log); err != nil {
			log.Fatalw("failed to seed store", "path", cfg.Seed.Path, "err", err)
		}
	}

	pub := openPublisher(cfg.MQTT, log)
	defer pub.Close()

	// wire dependencies
	services := service.NewService(repos, service.Deps{
		Publisher:  pub,
		Logger:     log,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		PendingTTL: cfg.Workflow.PendingTTL,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.WithStreamInterval(cfg.WS.DefaultInterval))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// expire abandoned board transitions
	go services.Transition.Run(ctx, cfg.Workflow.SweepInterval)

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "driver", cfg.DB.Driver)

	// graceful shutdown
	waitForShutdown(cancel, srv, cfg.Server.ShutdownTimeout, log)
}

// openRepository returns the repositories for the configured driver. conn is
// nil for the memory driver.
func openRepository(cfg config.DBConfig, log *logger.Logger) (*repository.Repository, *sql.DB, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warnw("using in-memory storage; data is lost on restart")
		return memory.NewRepository(), nil, nil
	case config.DriverPostgres:
		conn, dialect, err := db.InitDB(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRepository(conn, dialect), conn, nil
	default:
		conn, dialect, err := db.InitDB(config.DriverSQLite, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRepository(conn, dialect), conn, nil
	}
}

func seedStore(path string, repos *repository.Repository, log *logger.Logger) error {
	records, err := seed.Load(path)
	if err != nil {
		return err
	}
	n, err := seed.Apply(context.Background(), repos.Maintenance, records)
	if err != nil {
		return err
	}
	if n == 0 {
		log.Infow("store not empty; seed skipped", "path", path)
		return nil
	}
	log.Infow("store seeded", "path", path, "records", n)
	return nil
}

// openPublisher falls back to a no-op publisher when no broker is configured
// or the broker is unreachable at startup.
func openPublisher(cfg config.MQTTConfig, log *logger.Logger) notify.Publisher {
	if cfg.Broker == "" {
		return notify.Nop{}
	}
	pub, err := notify.NewMQTT(notify.MQTTOptions{
		Broker:      cfg.Broker,
		ClientID:    cfg.ClientID,
		TopicPrefix: cfg.TopicPrefix,
	}, log)
	if err != nil {
		log.Warnw("mqtt disabled", "broker", cfg.Broker, "err", err)
		return notify.Nop{}
	}
	log.Infow("mqtt connected", "broker", cfg.Broker, "topic_prefix", cfg.TopicPrefix)
	return pub
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
