package usecase_test

import (
	"context"
	"testing"
	"time"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
	"weekly-task-planner/internal/planner/usecase"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/log"
)

const testDelay = 20 * time.Millisecond

// 2024-05-01 is a Wednesday.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	uc       planner.UseCase
	sessions *session.Manager
	sess     *session.Session
	sc       model.Scope
}

func setup(t *testing.T) fixture {
	t.Helper()
	cal, err := datemath.NewCalendar("UTC", "sunday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessions := session.NewManager(log.NewNop(), cal, session.Config{RemovalDelay: testDelay},
		session.WithClock(func() time.Time { return fixedNow }))

	s, err := sessions.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error opening session: %v", err)
	}
	t.Cleanup(sessions.CloseAll)

	return fixture{
		uc:       usecase.New(log.NewNop(), sessions, 10),
		sessions: sessions,
		sess:     s,
		sc:       model.Scope{SessionID: s.ID},
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func standup() planner.AddTaskInput {
	return planner.AddTaskInput{Title: "Standup", StartTime: "09:00 AM", EndTime: "10:00 AM", Color: planner.ColorRed}
}
