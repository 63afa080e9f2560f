package session_test

import (
	"context"
	"testing"
	"time"

	repo "weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/log"
)

func newManager(t *testing.T, cfg session.Config) *session.Manager {
	t.Helper()
	cal, err := datemath.NewCalendar("UTC", "sunday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return session.NewManager(log.NewNop(), cal, cfg, session.WithClock(now))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Anchored on today with default draft", func(t *testing.T) {
		m := newManager(t, session.Config{RemovalDelay: 10 * time.Millisecond})
		s, err := m.Open(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" {
			t.Fatal("expected a session id")
		}
		if got := datemath.DayKey(s.State.Anchor); got != "2024-05-01" {
			t.Errorf("anchor = %s", got)
		}
		if !s.State.Today.Equal(s.State.Anchor) {
			t.Errorf("today %v differs from anchor %v", s.State.Today, s.State.Anchor)
		}
		if s.State.Draft.StartTime != "10:00 AM" || s.State.Draft.EndTime != "11:00 AM" {
			t.Errorf("unexpected draft %+v", s.State.Draft)
		}
		if n, _ := s.Tasks.CountTasks(ctx); n != 0 {
			t.Errorf("expected empty store, got %d", n)
		}
		if got, ok := m.Get(s.ID); !ok || got != s {
			t.Errorf("Get() did not return the opened session")
		}
	})

	t.Run("Seeds sample tasks", func(t *testing.T) {
		m := newManager(t, session.Config{SeedExamples: true})
		s, err := m.Open(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tasks, _ := s.Tasks.ListTasks(ctx, repo.ListTasksOptions{Date: "2024-05-01"})
		if len(tasks) != 2 {
			t.Fatalf("expected 2 sample tasks, got %d", len(tasks))
		}
		if tasks[0].Duration != "01 Hours" || tasks[1].Duration != "02 Hours" {
			t.Errorf("unexpected durations %q, %q", tasks[0].Duration, tasks[1].Duration)
		}
	})
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, session.Config{RemovalDelay: 20 * time.Millisecond})
	s, _ := m.Open(ctx)

	fired := make(chan struct{}, 1)
	s.Removals.Schedule(1, func() { fired <- struct{}{} })

	if !m.Close(ctx, s.ID) {
		t.Fatal("expected open session to close")
	}
	if m.Close(ctx, s.ID) {
		t.Error("closing twice must report false")
	}
	if _, ok := m.Get(s.ID); ok {
		t.Error("closed session still reachable")
	}

	select {
	case <-fired:
		t.Error("pending removal fired after close")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestCapacityEviction(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, session.Config{MaxSessions: 1, RemovalDelay: time.Hour})

	first, _ := m.Open(ctx)
	first.Removals.Schedule(1, func() {})

	second, _ := m.Open(ctx)
	if m.Len() != 1 {
		t.Fatalf("expected 1 open session, got %d", m.Len())
	}
	if _, ok := m.Get(first.ID); ok {
		t.Error("oldest session should have been evicted")
	}
	if first.Removals.Len() != 0 {
		t.Error("evicted session still has pending removals")
	}
	if _, ok := m.Get(second.ID); !ok {
		t.Error("newest session missing")
	}
}

func TestGetSkipsClosedSession(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, session.Config{RemovalDelay: time.Hour})

	s, _ := m.Open(ctx)
	// Simulates the reaper closing the session while it is still in the table.
	s.Close()

	if _, ok := m.Get(s.ID); ok {
		t.Fatal("closed session must not be returned")
	}
	if m.Len() != 0 {
		t.Errorf("closed session must not be re-added, got %d open", m.Len())
	}
	if s.Removals.Schedule(1, func() {}) {
		t.Error("closed session accepted a removal")
	}
}
