// Package main is the entry point for the task console. It wires all
// dependencies using samber/do v2, runs a readiness preflight, and serves the
// interactive menu on stdin/stdout until the user exits or SIGINT/SIGTERM
// arrives.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskconsole/internal/adapters/console"
	"github.com/jsamuelsen11/taskconsole/internal/adapters/memory"
	"github.com/jsamuelsen11/taskconsole/internal/app"
	"github.com/jsamuelsen11/taskconsole/internal/output"
	"github.com/jsamuelsen11/taskconsole/internal/platform/config"
	"github.com/jsamuelsen11/taskconsole/internal/platform/health"
	"github.com/jsamuelsen11/taskconsole/internal/platform/logging"
	"github.com/jsamuelsen11/taskconsole/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskconsole/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultProfile      = "local"
	preflightTimeout    = 5 * time.Second
	otelShutdownTimeout = 5 * time.Second
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
		profile = defaultProfile
	}

	var opts []config.Option
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		opts = append(opts, config.WithConfigDir(dir))
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, os.Stdin, os.Stdout)

	// Resolve the console (eagerly wires the full graph).
	cons, err := do.Invoke[*console.Console](injector)
	if err != nil {
		return fmt.Errorf("resolving console: %w", err)
	}

	// Register health checkers after the graph is wired.
	store := do.MustInvoke[*memory.TaskStore](injector)
	registry := do.MustInvoke[*health.Registry](injector)
	registry.Register(store)

	if err := preflight(ctx, registry); err != nil {
		return err
	}

	logger.Info("console starting",
		slog.String("profile", profile),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	if err := cons.Run(ctx); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}

	logger.Info("console stopped", slog.Int("tasks", store.Len()))
	return nil
}

func preflight(ctx context.Context, registry *health.Registry) error {
	checkCtx, cancel := context.WithTimeout(ctx, preflightTimeout)
	defer cancel()

	if err := registry.Ready(checkCtx); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}
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

	metrics, err := telemetry.NewMetrics(mp)
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

func registerDependencies(injector *do.RootScope, in io.Reader, out io.Writer) {
	do.Provide(injector, func(_ do.Injector) (*memory.TaskStore, error) {
		return memory.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*memory.TaskStore](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTaskService(store, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*console.Console, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		table := output.NewTable(cfg.Display.TitleWidth, cfg.Display.DescriptionWidth)
		return console.New(svc, in, out, logger, console.WithTable(table)), nil
	})
}
