package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health check failure that still lets the component
// serve traffic, such as a circuit breaker probing in half-open state.
var ErrDegraded = errors.New("degraded")

// HealthChecker is implemented by any component that can report its health,
// such as the storage transaction runner.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "storage").
	Name() string

	// HealthCheck returns nil if healthy, or an error describing the failure.
	// Errors wrapping ErrDegraded do not fail readiness.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
