package ports

import (
	"context"

	"github.com/jsamuelsen11/taskconsole/internal/domain/task"
)

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (the
// console front end). A missing task is a normal outcome reported through the
// boolean results, never through an error.
type TaskService interface {
	// CreateTask validates and stores a new incomplete task, returning a copy
	// with its assigned ID.
	// Returns a domain.ErrValidation error if the title or description is
	// rejected; nothing is stored and no ID is consumed in that case.
	CreateTask(ctx context.Context, title string, description *string) (task.Task, error)

	// ListTasks returns copies of every task in creation order. The result is
	// empty, not nil, when the store holds no tasks.
	ListTasks(ctx context.Context) []task.Task

	// GetTask returns a copy of the task with the given ID.
	GetTask(ctx context.Context, id int64) (task.Task, bool)

	// UpdateTask applies the supplied fields of patch to an existing task.
	// Returns found=false when the ID is unknown, and a domain.ErrValidation
	// error (with the task left unchanged) when a supplied field is rejected.
	UpdateTask(ctx context.Context, id int64, patch task.Patch) (task.Task, bool, error)

	// DeleteTask removes a task permanently. Returns false if it did not exist.
	DeleteTask(ctx context.Context, id int64) bool

	// ToggleTaskStatus flips a task's completion flag.
	ToggleTaskStatus(ctx context.Context, id int64) (task.Task, bool)

	// ClearAllTasks removes every task and restarts ID assignment at 1.
	ClearAllTasks(ctx context.Context)
}
