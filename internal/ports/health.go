package ports

import "context"

// HealthChecker is implemented by any component that can report whether it
// is ready to serve. The task store is the main example.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "task-store").
	Name() string

	// HealthCheck returns nil if the component is ready, or an error
	// describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the startup preflight to decide whether the console may start.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
