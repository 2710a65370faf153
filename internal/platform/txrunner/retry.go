package txrunner

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs the inner unit of work, starting a fresh transaction each
// time storage reports a concurrency conflict.
func (r *Runner) doWithRetry(ctx context.Context, operation string, fn ports.TxFunc) error {
	if r.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("txrunner: maxAttempts must be >= 1, got %d", r.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range r.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := r.waitForRetry(ctx, operation, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = r.inner.Do(ctx, operation, fn)
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// waitForRetry logs the retry at WARN level, counts it, and waits for the
// backoff delay or context cancellation.
func (r *Runner) waitForRetry(ctx context.Context, operation string, attempt int, lastErr error) error {
	delay := backoff(attempt, r.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying transaction",
		slog.String("operation", operation),
		slog.String("driver", r.driver),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", r.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	if r.metrics != nil {
		r.metrics.StoreTxRetries.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrDBSystem.String(r.driver),
			telemetry.AttrOperation.String(operation),
		))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a fresh transaction could succeed where err
// failed. Only storage conflicts qualify; a cancelled caller never does.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, domain.ErrConcurrency)
}
