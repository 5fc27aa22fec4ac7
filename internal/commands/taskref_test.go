package commands

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/filter"
	"taskflow/internal/service"
	"taskflow/internal/session"
	"taskflow/internal/testutil"
)

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByPosition {
		t.Error("expected ByPosition to be false")
	}
	if ref.ID != 42 {
		t.Errorf("expected ID 42, got %d", ref.ID)
	}
	if ref.String() != "42" {
		t.Errorf("expected \"42\", got %q", ref.String())
	}
}

func TestParseTaskRef_Position(t *testing.T) {
	ref, err := ParseTaskRef([]string{"#2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByPosition {
		t.Error("expected ByPosition to be true")
	}
	if ref.Position != 2 {
		t.Errorf("expected Position 2, got %d", ref.Position)
	}
	if ref.String() != "#2" {
		t.Errorf("expected \"#2\", got %q", ref.String())
	}
}

func TestParseTaskRef_Empty(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, arg := range []string{"abc", "#", "#x", "-1", "1a", "４２"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("%q: expected error", arg)
			continue
		}
		want := "invalid task reference: " + arg
		if err.Error() != want {
			t.Errorf("%q: expected %q, got %q", arg, want, err.Error())
		}
	}
}

func TestParseTaskRef_Overflow(t *testing.T) {
	if _, err := ParseTaskRef([]string{"99999999999999999999"}); err == nil {
		t.Error("expected error for id overflow")
	}
}

func refSession() *session.Session {
	svc := testutil.NewFakeService()
	svc.AddTask(10, "Buy milk")
	svc.AddTask(20, "Water plants")
	svc.Put(service.Task{ID: 30, Title: "Pay rent", Status: service.StatusCompleted})
	return session.New(svc)
}

func TestResolveTaskRef_ByID(t *testing.T) {
	task, err := ResolveTaskRef(context.Background(), refSession(), TaskRef{ID: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Water plants" {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestResolveTaskRef_ByIDNotFound(t *testing.T) {
	_, err := ResolveTaskRef(context.Background(), refSession(), TaskRef{ID: 99})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveTaskRef_PositionUsesCurrentView(t *testing.T) {
	sess := refSession()
	sess.SetFilter(filter.Completed)

	task, err := ResolveTaskRef(context.Background(), sess, TaskRef{Position: 1, ByPosition: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 30 {
		t.Errorf("expected task 30, got %d", task.ID)
	}

	_, err = ResolveTaskRef(context.Background(), sess, TaskRef{Position: 2, ByPosition: true})
	if !errors.Is(err, errPositionOutOfRange) {
		t.Errorf("expected errPositionOutOfRange, got %v", err)
	}
}

func TestIsAllDigits(t *testing.T) {
	cases := map[string]bool{"": false, "0": true, "123": true, "12a": false, "٣": false}
	for in, want := range cases {
		if got := isAllDigits(in); got != want {
			t.Errorf("isAllDigits(%q) = %v, want %v", in, got, want)
		}
	}
}
