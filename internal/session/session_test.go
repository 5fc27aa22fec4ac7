package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskflow/internal/backend/memory"
	"taskflow/internal/filter"
	"taskflow/internal/service"
	"taskflow/internal/session"
	"taskflow/internal/testutil"
)

// countingStore counts ListTasks calls on a versioned store.
type countingStore struct {
	*memory.Store
	lists int
}

func (c *countingStore) ListTasks(ctx context.Context) ([]service.Task, error) {
	c.lists++
	return c.Store.ListTasks(ctx)
}

func seeded() *memory.Store {
	return memory.New(memory.WithTasks(memory.SeedTasks()))
}

func TestVisible_DefaultsToEverything(t *testing.T) {
	s := session.New(seeded(), session.WithToday("2025-07-07"))

	tasks, err := s.Visible(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(tasks))
	}
	if s.Narrowed() {
		t.Error("expected fresh session not to be narrowed")
	}
}

func TestVisible_SearchAndFilter(t *testing.T) {
	s := session.New(seeded(), session.WithToday("2025-07-07"))
	ctx := context.Background()

	s.SetSearchTerm("REVIEW")
	tasks, _ := s.Visible(ctx)
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Fatalf("expected task 2, got %v", tasks)
	}

	s.SetSearchTerm("")
	s.SetFilter(filter.Overdue)
	tasks, _ = s.Visible(ctx)
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Fatalf("expected overdue task 2, got %v", tasks)
	}
	if !s.Narrowed() {
		t.Error("expected session to be narrowed")
	}
}

func TestVisible_TodayFromClock(t *testing.T) {
	now := time.Date(2025, 7, 8, 12, 0, 0, 0, time.Local)
	s := session.New(seeded(), session.WithClock(func() time.Time { return now }))
	s.SetFilter(filter.DueToday)

	tasks, _ := s.Visible(context.Background())
	if len(tasks) != 1 || tasks[0].ID != 3 {
		t.Fatalf("expected task 3 due today, got %v", tasks)
	}
}

func TestVisible_MemoizedUntilStoreChanges(t *testing.T) {
	store := &countingStore{Store: seeded()}
	s := session.New(store, session.WithToday("2025-07-07"))
	ctx := context.Background()

	_, _ = s.Visible(ctx)
	_, _ = s.Visible(ctx)
	if store.lists != 1 {
		t.Fatalf("expected 1 list call, got %d", store.lists)
	}

	if _, err := s.Create(ctx, service.Draft{Title: "Buy milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks, _ := s.Visible(ctx)
	if store.lists != 2 {
		t.Errorf("expected recompute after mutation, got %d list calls", store.lists)
	}
	if len(tasks) != 4 {
		t.Errorf("expected 4 tasks, got %d", len(tasks))
	}

	s.SetFilter(filter.Completed)
	tasks, _ = s.Visible(ctx)
	if store.lists != 3 {
		t.Errorf("expected recompute after filter change, got %d list calls", store.lists)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 completed task, got %d", len(tasks))
	}
}

func TestVisible_UnversionedServiceNotMemoized(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "a")
	s := session.New(svc)

	_, _ = s.Visible(context.Background())
	_, _ = s.Visible(context.Background())
	if svc.Calls != 2 {
		t.Errorf("expected 2 list calls, got %d", svc.Calls)
	}
}

func TestVisible_Error(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("boom")
	s := session.New(svc)

	if _, err := s.Visible(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreateThenDeleteThenFilter(t *testing.T) {
	s := session.New(seeded(), session.WithToday("2025-07-07"))
	ctx := context.Background()

	task, err := s.Create(ctx, service.Draft{Title: "Water plants"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all, _ := s.Tasks(ctx)
	if len(all) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(all))
	}
	if all[3].Status != service.StatusPending {
		t.Errorf("expected new task pending, got %q", all[3].Status)
	}

	if err := s.Delete(ctx, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchTerm("water plants")
	visible, _ := s.Visible(ctx)
	if len(visible) != 0 {
		t.Errorf("expected deleted task to be gone, got %v", visible)
	}
}

func TestStats(t *testing.T) {
	s := session.New(seeded(), session.WithToday("2025-07-07"))
	ctx := context.Background()

	if err := s.SetStatus(ctx, 2, service.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filter.Stats{Total: 3, Completed: 2, InProgress: 1, Pending: 0, Overdue: 0}
	if stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}

func TestUpdate(t *testing.T) {
	s := session.New(seeded())
	title := "Renamed"
	task, err := s.Update(context.Background(), 3, service.Patch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Renamed" || task.Status != service.StatusCompleted {
		t.Errorf("expected merged task, got %+v", task)
	}
}

func TestEmptyHint(t *testing.T) {
	s := session.New(seeded())
	if got := s.EmptyHint(); got != "Get started by creating your first task" {
		t.Errorf("unexpected hint %q", got)
	}
	s.SetSearchTerm("zzz")
	if got := s.EmptyHint(); got != "Try adjusting your search or filter criteria" {
		t.Errorf("unexpected hint %q", got)
	}
}
