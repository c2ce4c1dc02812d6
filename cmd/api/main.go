package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promocodeapi/internal/config"
	"promocodeapi/internal/database"
	"promocodeapi/internal/database/migration"
	handlers "promocodeapi/internal/http/handler"
	"promocodeapi/internal/http/middleware"
	"promocodeapi/internal/lib/logger/sl"
	"promocodeapi/internal/model"
	"promocodeapi/internal/otel"
	"promocodeapi/internal/repository"
	"promocodeapi/internal/repository/memory"
	"promocodeapi/internal/repository/postgres"
	"promocodeapi/internal/service"
	"promocodeapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	employees repository.Repository[model.Employee]
	roles     repository.Repository[model.Role]
	db        handlers.Pinger
	close     func() error
}

// @title Promocode Factory API
// @version 1.0
// @description Employee administration for the promocode factory.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := sl.New(os.Stdout, cfg.LogLevel, cfg.Location())

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", sl.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown", sl.Err(err))
		}
	}()

	repos, err := newRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close()

	// Exports are disabled unless object storage is configured
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
	}

	svc := handlers.Services{
		Employees: service.NewEmployeeService(repos.employees),
		Roles:     service.NewRoleService(repos.roles),
		Exports:   service.NewExportService(objStore, repos.employees, cfg.ExportURLExpiry),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithSlog(log))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, repos.db, svc)

	app.Get("/swagger/*", handlers.Swagger(cfg.AppHost))

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started",
			slog.String("addr", ":"+cfg.Port),
			slog.String("repository_driver", cfg.RepositoryDriver),
			slog.Bool("exports_enabled", objStore != nil),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func newRepositories(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*repositories, error) {
	switch cfg.RepositoryDriver {
	case config.DriverMemory:
		return &repositories{
			employees: memory.NewEmployeeRepository(),
			roles:     memory.NewRoleRepository(),
			close:     func() error { return nil },
		}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return postgresRepositories(db), nil

	default:
		return nil, errors.New("unknown repository driver: " + cfg.RepositoryDriver)
	}
}

func postgresRepositories(db *sql.DB) *repositories {
	return &repositories{
		employees: postgres.NewEmployeePostgres(db),
		roles:     postgres.NewRolePostgres(db),
		db:        db,
		close:     db.Close,
	}
}
