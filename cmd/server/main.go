// Package main is the entry point for the academic catalog service. It opens
// the configured catalog store, wires all dependencies using samber/do v2,
// starts the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/academic-catalog/internal/adapters/http"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/academic-catalog/internal/app"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/config"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/health"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/txrunner"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("storage", cfg.Storage.Driver),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Storage: migrations run on open, so a bad schema fails startup.
	store, err := openStore(ctx, &cfg.Storage, logger)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired. The store reports
	// reachability; the runner reports its circuit breaker state.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*txrunner.Runner](injector))

	logger.Info("catalog store ready",
		slog.String("driver", store.Name()),
		slog.String("dsn", cfg.Storage.DSN),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return. The deferred store close runs
	// after in-flight transactions have drained.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// openStore opens the catalog store for the configured driver.
func openStore(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*sqlstore.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg, logger)
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*txrunner.Runner, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return txrunner.New(&cfg.Storage, store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FacultyService, error) {
		runner := do.MustInvoke[*txrunner.Runner](i)
		return app.NewFacultyService(runner, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProgramService, error) {
		runner := do.MustInvoke[*txrunner.Runner](i)
		return app.NewProgramService(runner, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Storage.PingTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FacultyHandler, error) {
		faculties := do.MustInvoke[ports.FacultyService](i)
		programs := do.MustInvoke[ports.ProgramService](i)
		return handlers.NewFacultyHandler(faculties, programs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProgramHandler, error) {
		programs := do.MustInvoke[ports.ProgramService](i)
		return handlers.NewProgramHandler(programs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		facultyH := do.MustInvoke[*handlers.FacultyHandler](i)
		programH := do.MustInvoke[*handlers.ProgramHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(facultyH, programH, healthH,
			middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.CorrelationID(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
				middleware.Timeout(cfg.Server.RequestTimeout),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
