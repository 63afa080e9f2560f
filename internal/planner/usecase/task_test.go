package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
)

func TestAddTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Standup on the active day", func(t *testing.T) {
		f := setup(t)
		out, err := f.uc.AddTask(ctx, f.sc, standup())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Duration != "01 Hours" || out.Task.Date != "2024-05-01" {
			t.Errorf("unexpected task %+v", out.Task)
		}

		list, err := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{Date: "2024-05-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Tasks) != 1 {
			t.Fatalf("expected exactly one task, got %d", len(list.Tasks))
		}
		if got := list.Tasks[0]; got.Duration != "01 Hours" || got.Date != "2024-05-01" || got.Title != "Standup" {
			t.Errorf("unexpected listed task %+v", got)
		}
	})

	t.Run("Empty title rejected", func(t *testing.T) {
		f := setup(t)
		in := standup()
		in.Title = ""
		_, err := f.uc.AddTask(ctx, f.sc, in)
		if !errors.Is(err, planner.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
		if n, _ := f.sess.Tasks.CountTasks(ctx); n != 0 {
			t.Errorf("store changed: %d tasks", n)
		}
	})

	t.Run("Malformed clock rejected", func(t *testing.T) {
		f := setup(t)
		in := standup()
		in.EndTime = "late"
		if _, err := f.uc.AddTask(ctx, f.sc, in); !errors.Is(err, planner.ErrInvalidTime) {
			t.Errorf("expected ErrInvalidTime, got %v", err)
		}
	})

	t.Run("End before start is accepted", func(t *testing.T) {
		f := setup(t)
		out, err := f.uc.AddTask(ctx, f.sc, planner.AddTaskInput{
			Title: "Backwards", StartTime: "11:00 AM", EndTime: "10:00 AM", Color: planner.ColorBlue,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Duration != "-1 Hours" {
			t.Errorf("unexpected duration %q", out.Task.Duration)
		}
	})

	t.Run("Resets draft and closes dialog", func(t *testing.T) {
		f := setup(t)
		title := "Draft title"
		f.uc.SetDialog(ctx, f.sc, planner.SetDialogInput{Open: true})
		f.uc.UpdateDraft(ctx, f.sc, planner.UpdateDraftInput{Title: &title})

		if _, err := f.uc.AddTask(ctx, f.sc, standup()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		view, _ := f.uc.View(ctx, f.sc)
		if view.Dialog.Open {
			t.Error("dialog still open")
		}
		if view.Dialog.Draft != planner.DefaultDraft() {
			t.Errorf("draft not reset: %+v", view.Dialog.Draft)
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		f := setup(t)
		_, err := f.uc.AddTask(ctx, model.Scope{SessionID: "missing"}, standup())
		if !errors.Is(err, planner.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestSubmitDraft(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	if _, err := f.uc.SubmitDraft(ctx, f.sc); !errors.Is(err, planner.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle for default draft, got %v", err)
	}

	title, start, end, color := "Review", "01:00 PM", "02:30 PM", planner.ColorYellow
	f.uc.UpdateDraft(ctx, f.sc, planner.UpdateDraftInput{Title: &title, StartTime: &start, EndTime: &end, Color: &color})

	out, err := f.uc.SubmitDraft(ctx, f.sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Title != "Review" || out.Task.Duration != "01:30 Hours" || out.Task.Color != planner.ColorYellow {
		t.Errorf("unexpected task %+v", out.Task)
	}
}

func TestListForDay(t *testing.T) {
	ctx := context.Background()

	t.Run("Switching day isolates tasks", func(t *testing.T) {
		f := setup(t)
		f.uc.AddTask(ctx, f.sc, standup())

		if _, err := f.uc.SelectDay(ctx, f.sc, planner.SelectDayInput{Date: "2024-05-02"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{})
		if other.Date != "2024-05-02" || len(other.Tasks) != 0 {
			t.Errorf("expected empty 2024-05-02, got %+v", other)
		}
		orig, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{Date: "2024-05-01"})
		if len(orig.Tasks) != 1 {
			t.Errorf("expected original day unchanged, got %d tasks", len(orig.Tasks))
		}
	})

	t.Run("Insertion order not start order", func(t *testing.T) {
		f := setup(t)
		f.uc.AddTask(ctx, f.sc, planner.AddTaskInput{Title: "late", StartTime: "05:00 PM", EndTime: "06:00 PM", Color: planner.ColorBlue})
		f.uc.AddTask(ctx, f.sc, standup())

		list, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{})
		if len(list.Tasks) != 2 || list.Tasks[0].Title != "late" {
			t.Errorf("unexpected order %+v", list.Tasks)
		}
	})

	t.Run("Invalid date", func(t *testing.T) {
		f := setup(t)
		_, err := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{Date: "tomorrow"})
		if !errors.Is(err, planner.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestCompleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Flags then removes after delay", func(t *testing.T) {
		f := setup(t)
		added, _ := f.uc.AddTask(ctx, f.sc, standup())

		out, err := f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Found || !out.Scheduled || !out.Task.Completed || !out.Task.Swiping {
			t.Fatalf("unexpected output %+v", out)
		}
		if out.RemoveIn != testDelay {
			t.Errorf("RemoveIn = %v", out.RemoveIn)
		}

		list, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{})
		if len(list.Tasks) != 1 || !list.Tasks[0].Completed {
			t.Fatalf("task should still be listed as completed, got %+v", list.Tasks)
		}

		eventually(t, func() bool {
			list, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{})
			return len(list.Tasks) == 0
		})
	})

	t.Run("Repeated completion keeps one removal", func(t *testing.T) {
		f := setup(t)
		added, _ := f.uc.AddTask(ctx, f.sc, standup())

		f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})
		again, err := f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Found || again.Scheduled {
			t.Errorf("expected found without a new schedule, got %+v", again)
		}
		if f.sess.Removals.Len() != 1 {
			t.Errorf("expected 1 pending removal, got %d", f.sess.Removals.Len())
		}
	})

	t.Run("Removed id is a no-op", func(t *testing.T) {
		f := setup(t)
		added, _ := f.uc.AddTask(ctx, f.sc, standup())
		f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})
		eventually(t, func() bool {
			n, _ := f.sess.Tasks.CountTasks(ctx)
			return n == 0
		})

		out, err := f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Found || out.Scheduled {
			t.Errorf("expected nothing to happen, got %+v", out)
		}
	})

	t.Run("Ids stay unique after removal", func(t *testing.T) {
		f := setup(t)
		first, _ := f.uc.AddTask(ctx, f.sc, standup())
		f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: first.Task.ID})
		eventually(t, func() bool {
			n, _ := f.sess.Tasks.CountTasks(ctx)
			return n == 0
		})

		second, _ := f.uc.AddTask(ctx, f.sc, standup())
		if second.Task.ID == first.Task.ID {
			t.Errorf("id %d reused", second.Task.ID)
		}
	})

	t.Run("Closed session never removes", func(t *testing.T) {
		f := setup(t)
		added, _ := f.uc.AddTask(ctx, f.sc, standup())
		f.uc.CompleteTask(ctx, f.sc, planner.CompleteTaskInput{ID: added.Task.ID})

		f.sessions.Close(ctx, f.sess.ID)
		time.Sleep(4 * testDelay)

		if got, _ := f.sess.Tasks.GetTask(ctx, added.Task.ID); got.ID == 0 {
			t.Error("task removed after session close")
		}
	})
}
