package txrunner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
)

func TestBackoff_ExponentialIncrease(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	// Run multiple samples to account for jitter.
	const samples = 100
	for attempt := 1; attempt <= 3; attempt++ {
		baseDelay := float64(100*time.Millisecond) * math.Pow(2.0, float64(attempt-1))
		minExpected := time.Duration(baseDelay * (1 - jitterFraction))
		maxExpected := time.Duration(baseDelay * (1 + jitterFraction))

		for range samples {
			delay := backoff(attempt, cfg)
			if delay < minExpected || delay > maxExpected {
				t.Errorf("attempt %d: delay %v not in [%v, %v]", attempt, delay, minExpected, maxExpected)
			}
		}
	}
}

func TestBackoff_CappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 20 * time.Millisecond,
		maxInterval:     100 * time.Millisecond,
		multiplier:      2.0,
	}

	maxWithJitter := time.Duration(float64(cfg.maxInterval) * (1 + jitterFraction))

	const samples = 100
	for range samples {
		if delay := backoff(10, cfg); delay > maxWithJitter {
			t.Errorf("delay %v exceeds max interval with jitter %v", delay, maxWithJitter)
		}
	}
}

func TestSecureRandFloat64_Range(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := secureRandFloat64(); v < 0 || v >= 1 {
			t.Fatalf("secureRandFloat64() = %v, want [0, 1)", v)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "concurrency", err: &domain.ConcurrencyError{Op: "RegisterFaculty"}, want: true},
		{name: "wrapped concurrency", err: fmt.Errorf("commit: %w", domain.ErrConcurrency), want: true},
		{name: "validation", err: domain.NewValidationError(domain.KindDuplicateName, "name", "taken"), want: false},
		{name: "not found", err: domain.NewNotFoundError("faculty", 1), want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{
			name: "canceled during conflict",
			err:  &domain.ConcurrencyError{Op: "RegisterFaculty", Err: context.Canceled},
			want: false,
		},
		{name: "generic", err: errors.New("disk I/O error"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want uint32
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 3, want: 3},
		{in: math.MaxUint32 + 1, want: math.MaxUint32},
	}
	for _, tt := range tests {
		if got := toUint32(tt.in); got != tt.want {
			t.Errorf("toUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
