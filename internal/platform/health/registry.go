// Package health provides a thread-safe registry of readiness checks. The
// startup preflight runs every registered check before the console starts.
package health

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/taskconsole/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// ErrNotReady is wrapped by the error Ready returns when any check fails.
var ErrNotReady = errors.New("not ready")

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Ready runs CheckAll and joins every failure, ordered by checker name, into
// one error wrapping ErrNotReady. It returns nil when all checks pass.
func (r *Registry) Ready(ctx context.Context) error {
	results := r.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name, err := range results {
		if err != nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	slices.Sort(names)

	errs := make([]error, 0, len(names)+1)
	errs = append(errs, ErrNotReady)
	for _, name := range names {
		errs = append(errs, fmt.Errorf("%s: %w", name, results[name]))
	}
	return errors.Join(errs...)
}
