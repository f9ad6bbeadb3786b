package ports

import "github.com/jsamuelsen11/taskconsole/internal/domain/task"

// TaskStore is the storage port for tasks. Implementations own the
// authoritative collection and the ID counter, keep tasks in insertion order,
// never reuse an ID until Reset, and hand out copies only.
//
// Each method is atomic with respect to the others.
type TaskStore interface {
	// Insert assigns the next ID to t, appends it and returns a copy.
	Insert(t task.Task) task.Task

	// List returns copies of all tasks in insertion order.
	List() []task.Task

	// Get returns a copy of the task with the given ID.
	Get(id int64) (task.Task, bool)

	// Update looks up the task, calls mutate on a working copy and stores the
	// copy only if mutate returns nil. The lookup, mutate and write happen in
	// one critical section. mutate is not called when the task is missing.
	Update(id int64, mutate func(*task.Task) error) (task.Task, bool, error)

	// Delete removes the task with the given ID.
	Delete(id int64) bool

	// Reset removes all tasks, resets the ID counter to 1 and returns the
	// number of tasks removed.
	Reset() int
}
