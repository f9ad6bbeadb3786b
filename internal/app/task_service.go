// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/taskconsole/internal/domain/task"
	"github.com/jsamuelsen11/taskconsole/internal/platform/logging"
	"github.com/jsamuelsen11/taskconsole/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskconsole/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of a ports.TaskStore. It
// runs the domain validation, keeps the store-size gauge in step, and emits
// structured logs, spans and operation metrics. It holds no task state of its
// own.
type TaskService struct {
	store   ports.TaskStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewTaskService creates a TaskService. logger is used when the request
// context carries none; a nil logger is replaced by one that discards output.
// metrics may be nil when telemetry is disabled.
func NewTaskService(store ports.TaskStore, logger *slog.Logger, metrics *telemetry.Metrics) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:   store,
		logger:  logger,
		metrics: metrics,
		tracer:  telemetry.Tracer(),
	}
}

// CreateTask validates the input and stores a new incomplete task.
func (s *TaskService) CreateTask(ctx context.Context, title string, description *string) (task.Task, error) {
	ctx, done := s.begin(ctx, "CreateTask")

	candidate, err := task.New(title, description)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "rejected new task",
			slog.String(logging.KeyOperation, "CreateTask"),
			slog.Any("error", err),
		)
		done(telemetry.ResultInvalid, err)
		return task.Task{}, err
	}

	created := s.store.Insert(candidate)
	s.metrics.AddStoreSize(ctx, 1)

	s.log(ctx).InfoContext(ctx, "created task",
		slog.Int64(logging.KeyTaskID, created.ID),
		slog.String("title", created.Title),
	)
	done(telemetry.ResultOK, nil, telemetry.AttrTaskID.Int64(created.ID))
	return created, nil
}

// ListTasks returns every task in creation order.
func (s *TaskService) ListTasks(ctx context.Context) []task.Task {
	ctx, done := s.begin(ctx, "ListTasks")

	tasks := s.store.List()

	s.log(ctx).DebugContext(ctx, "listed tasks", slog.Int("count", len(tasks)))
	done(telemetry.ResultOK, nil)
	return tasks
}

// GetTask returns the task with the given ID.
func (s *TaskService) GetTask(ctx context.Context, id int64) (task.Task, bool) {
	ctx, done := s.begin(ctx, "GetTask")

	td, ok := s.store.Get(id)
	if !ok {
		s.log(ctx).DebugContext(ctx, "task not found",
			slog.String(logging.KeyOperation, "GetTask"),
			slog.Int64(logging.KeyTaskID, id),
		)
		done(telemetry.ResultNotFound, nil, telemetry.AttrTaskID.Int64(id))
		return task.Task{}, false
	}

	done(telemetry.ResultOK, nil, telemetry.AttrTaskID.Int64(id))
	return td, true
}

// UpdateTask applies patch to the task with the given ID. The lookup happens
// before validation, so an unknown ID reports not-found even for a patch that
// would be rejected.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch task.Patch) (task.Task, bool, error) {
	ctx, done := s.begin(ctx, "UpdateTask")

	updated, found, err := s.store.Update(id, func(td *task.Task) error {
		return td.Apply(patch)
	})

	switch {
	case !found:
		s.log(ctx).DebugContext(ctx, "task not found",
			slog.String(logging.KeyOperation, "UpdateTask"),
			slog.Int64(logging.KeyTaskID, id),
		)
		done(telemetry.ResultNotFound, nil, telemetry.AttrTaskID.Int64(id))
		return task.Task{}, false, nil
	case err != nil:
		s.log(ctx).WarnContext(ctx, "rejected task update",
			slog.String(logging.KeyOperation, "UpdateTask"),
			slog.Int64(logging.KeyTaskID, id),
			slog.Any("error", err),
		)
		done(telemetry.ResultInvalid, err, telemetry.AttrTaskID.Int64(id))
		return task.Task{}, true, err
	}

	s.log(ctx).InfoContext(ctx, "updated task", slog.Int64(logging.KeyTaskID, id))
	done(telemetry.ResultOK, nil, telemetry.AttrTaskID.Int64(id))
	return updated, true, nil
}

// DeleteTask removes the task with the given ID.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) bool {
	ctx, done := s.begin(ctx, "DeleteTask")

	if !s.store.Delete(id) {
		s.log(ctx).DebugContext(ctx, "task not found",
			slog.String(logging.KeyOperation, "DeleteTask"),
			slog.Int64(logging.KeyTaskID, id),
		)
		done(telemetry.ResultNotFound, nil, telemetry.AttrTaskID.Int64(id))
		return false
	}
	s.metrics.AddStoreSize(ctx, -1)

	s.log(ctx).InfoContext(ctx, "deleted task", slog.Int64(logging.KeyTaskID, id))
	done(telemetry.ResultOK, nil, telemetry.AttrTaskID.Int64(id))
	return true
}

// ToggleTaskStatus flips the completion flag of the task with the given ID.
func (s *TaskService) ToggleTaskStatus(ctx context.Context, id int64) (task.Task, bool) {
	ctx, done := s.begin(ctx, "ToggleTaskStatus")

	toggled, found, _ := s.store.Update(id, func(td *task.Task) error {
		td.Toggle()
		return nil
	})
	if !found {
		s.log(ctx).DebugContext(ctx, "task not found",
			slog.String(logging.KeyOperation, "ToggleTaskStatus"),
			slog.Int64(logging.KeyTaskID, id),
		)
		done(telemetry.ResultNotFound, nil, telemetry.AttrTaskID.Int64(id))
		return task.Task{}, false
	}

	s.log(ctx).InfoContext(ctx, "toggled task",
		slog.Int64(logging.KeyTaskID, id),
		slog.Bool("completed", toggled.Completed),
	)
	done(telemetry.ResultOK, nil, telemetry.AttrTaskID.Int64(id))
	return toggled, true
}

// ClearAllTasks empties the store and restarts ID assignment at 1.
func (s *TaskService) ClearAllTasks(ctx context.Context) {
	ctx, done := s.begin(ctx, "ClearAllTasks")

	removed := s.store.Reset()
	s.metrics.AddStoreSize(ctx, -int64(removed))

	s.log(ctx).InfoContext(ctx, "cleared all tasks", slog.Int("removed", removed))
	done(telemetry.ResultOK, nil)
}

// log returns the logger carried by ctx, such as the console's per-action
// logger, falling back to the injected one.
func (s *TaskService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// begin starts a span for operation and returns a finisher that records the
// outcome on the span and in the operation metrics.
func (s *TaskService) begin(ctx context.Context, operation string) (context.Context, func(string, error, ...attribute.KeyValue)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "TaskService."+operation)

	return ctx, func(result string, err error, attrs ...attribute.KeyValue) {
		span.SetAttributes(append(attrs, telemetry.AttrResult.String(result))...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.RecordOperation(ctx, operation, result, time.Since(start))
	}
}
