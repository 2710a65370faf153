// Package txrunner decorates a storage unit of work with a circuit breaker,
// rate limiting, retry on concurrency conflicts, OpenTelemetry tracing, and
// transaction metrics.
//
// Every unit of work passes through, in order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → Storage Transaction
//
// Construction:
//
//	uow := txrunner.New(&cfg.Storage, store, metrics, logger)
//
// The runner satisfies ports.UnitOfWork, so application services take it in
// place of the raw store:
//
//	svc := app.NewFacultyService(uow, logger)
package txrunner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/config"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// checkerName identifies the runner in the readiness report.
const checkerName = "storage"

// Metric result labels.
const (
	resultSuccess     = "success"
	resultRejected    = "rejected"
	resultConflict    = "conflict"
	resultCircuitOpen = "circuit_open"
	resultError       = "error"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Runner is a ports.UnitOfWork that guards another one.
type Runner struct {
	inner    ports.UnitOfWork
	driver   string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

var (
	_ ports.UnitOfWork    = (*Runner)(nil)
	_ ports.HealthChecker = (*Runner)(nil)
)

// New wraps inner with the policies in cfg. If metrics is nil, metric
// recording is skipped.
func New(cfg *config.StorageConfig, inner ports.UnitOfWork, metrics *telemetry.Metrics, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isHealthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Runner{
		inner:   inner,
		driver:  cfg.Driver,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn through the full pipeline. While the breaker is open, Do fails
// fast with an error wrapping domain.ErrUnavailable and fn is not called.
func (r *Runner) Do(ctx context.Context, operation string, fn ports.TxFunc) error {
	start := time.Now()

	_, err := r.breaker.Execute(func() (struct{}, error) {
		if err := r.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := r.startSpan(ctx, operation)
		defer span.End()

		retryErr := r.doWithRetry(spanCtx, operation, fn)
		finishSpan(span, retryErr)

		return struct{}{}, retryErr
	})

	if isBreakerRejection(err) {
		err = fmt.Errorf("%s: %w: %w", checkerName, domain.ErrUnavailable, err)
	}

	r.recordMetrics(ctx, operation, start, err)

	return err
}

// Name returns the component identifier used by the health registry.
func (r *Runner) Name() string {
	return checkerName
}

// HealthCheck reports storage availability from the circuit breaker state.
// No query is issued; the store registers its own ping-based check.
func (r *Runner) HealthCheck(_ context.Context) error {
	state := r.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w (circuit breaker half-open)", checkerName, ports.ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}
}

func (r *Runner) waitForRateLimit(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

func (r *Runner) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("txrunner")

	return tracer.Start(ctx, "tx "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", r.driver),
			attribute.String("db.operation", operation),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so that rejections are counted.
func (r *Runner) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(r.driver),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(resultOf(err)),
	)

	r.metrics.StoreTxDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.StoreTxTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrUnavailable):
		return resultCircuitOpen
	case errors.Is(err, domain.ErrConcurrency):
		return resultConflict
	case isDomainOutcome(err):
		return resultRejected
	default:
		return resultError
	}
}

// isHealthyOutcome tells the breaker which errors say nothing about the
// health of storage: business rule rejections, exhausted conflict retries,
// and callers giving up.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		isDomainOutcome(err) ||
		errors.Is(err, domain.ErrConcurrency) ||
		errors.Is(err, context.Canceled)
}

func isDomainOutcome(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 clamps v into the uint32 range. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
