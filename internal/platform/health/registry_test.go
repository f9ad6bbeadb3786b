package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskconsole/internal/platform/health"
	"github.com/jsamuelsen11/taskconsole/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("task-store")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("telemetry")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["task-store"] != nil {
		t.Errorf("task-store check = %v, want nil", results["task-store"])
	}
	if results["telemetry"] != nil {
		t.Errorf("telemetry check = %v, want nil", results["telemetry"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("task-store")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("exporter unreachable")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("exporter")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["task-store"] != nil {
		t.Errorf("task-store check = %v, want nil", results["task-store"])
	}
	if results["exporter"] == nil {
		t.Fatal("exporter check = nil, want error")
	}
	if results["exporter"].Error() != "exporter unreachable" {
		t.Errorf("exporter check = %q, want %q", results["exporter"].Error(), "exporter unreachable")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("exporter")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["exporter"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["exporter"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("task-store")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("task-store")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["task-store"]
	if !ok {
		t.Fatal(`expected result for key "task-store", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("task-store check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestReady_AllHealthy(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("task-store")
	checker.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checker)

	if err := r.Ready(context.Background()); err != nil {
		t.Errorf("Ready() = %v, want nil", err)
	}
}

func TestReady_Empty(t *testing.T) {
	t.Parallel()

	if err := health.New().Ready(context.Background()); err != nil {
		t.Errorf("Ready() = %v, want nil", err)
	}
}

func TestReady_JoinsFailuresInNameOrder(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store not initialized")
	exporterErr := errors.New("exporter unreachable")

	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("task-store")
	store.EXPECT().HealthCheck(mock.Anything).Return(storeErr)

	exporter := mocks.NewMockHealthChecker(t)
	exporter.EXPECT().Name().Return("exporter")
	exporter.EXPECT().HealthCheck(mock.Anything).Return(exporterErr)

	r := health.New()
	r.Register(store)
	r.Register(exporter)

	err := r.Ready(context.Background())
	if !errors.Is(err, health.ErrNotReady) {
		t.Fatalf("Ready() = %v, want ErrNotReady", err)
	}
	if !errors.Is(err, storeErr) || !errors.Is(err, exporterErr) {
		t.Errorf("Ready() = %v, want both check errors wrapped", err)
	}

	want := "not ready\nexporter: exporter unreachable\ntask-store: store not initialized"
	if err.Error() != want {
		t.Errorf("Ready() message = %q, want %q", err.Error(), want)
	}
}
