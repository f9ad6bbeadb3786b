// Package memory provides the in-process implementation of ports.TaskStore.
// Nothing it holds survives a restart.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/jsamuelsen11/taskconsole/internal/domain/task"
	"github.com/jsamuelsen11/taskconsole/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskStore     = (*TaskStore)(nil)
	_ ports.HealthChecker = (*TaskStore)(nil)
)

// ErrNotInitialized is reported by HealthCheck for a zero-value TaskStore
// that was not built with New.
var ErrNotInitialized = errors.New("task store not initialized")

const firstID int64 = 1

// TaskStore keeps tasks in a slice ordered by insertion. Lookups are linear
// scans by ID. A single mutex guards the slice and the counter so every
// lookup-then-mutate sequence is atomic.
type TaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  []task.Task
}

// New creates an empty store whose first assigned ID is 1.
func New() *TaskStore {
	return &TaskStore{
		nextID: firstID,
		tasks:  make([]task.Task, 0),
	}
}

// Insert assigns the next ID to a copy of t, appends it and returns a copy.
func (s *TaskStore) Insert(t task.Task) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t = t.Clone()
	t.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, t)

	return t.Clone()
}

// List returns copies of all tasks in insertion order.
func (s *TaskStore) List() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]task.Task, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].Clone()
	}
	return out
}

// Get returns a copy of the task with the given ID.
func (s *TaskStore) Get(id int64) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Update runs mutate on a copy of the task and stores it only if mutate
// returns nil. found is false for an unknown ID.
func (s *TaskStore) Update(id int64, mutate func(*task.Task) error) (task.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, false, nil
	}

	working := s.tasks[i].Clone()
	if err := mutate(&working); err != nil {
		return task.Task{}, true, err
	}
	// ID is owned by the store.
	working.ID = id
	s.tasks[i] = working

	return working.Clone(), true, nil
}

// Delete removes the task with the given ID. Its ID is never reassigned.
func (s *TaskStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Reset removes every task, restarts IDs at 1 and returns how many were
// removed.
func (s *TaskStore) Reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.tasks)
	s.tasks = make([]task.Task, 0)
	s.nextID = firstID
	return removed
}

// Name implements ports.HealthChecker.
func (s *TaskStore) Name() string { return "task-store" }

// HealthCheck implements ports.HealthChecker.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nextID < firstID {
		return ErrNotInitialized
	}
	return nil
}

// indexOf must be called with mu held.
func (s *TaskStore) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}
