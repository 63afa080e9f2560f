package usecase

import (
	"context"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
	repo "weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	pkgLog "weekly-task-planner/pkg/log"
	"weekly-task-planner/pkg/timeslot"
)

// AddTask appends a task on the active day. Only an empty title is rejected.
// On success the draft is reset and the dialog closed.
func (uc *implUseCase) AddTask(ctx context.Context, sc model.Scope, input planner.AddTaskInput) (planner.AddTaskOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return planner.AddTaskOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	return uc.add(ctx, s, input)
}

// SubmitDraft adds the session's draft as a new task.
func (uc *implUseCase) SubmitDraft(ctx context.Context, sc model.Scope) (planner.AddTaskOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return planner.AddTaskOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	d := s.State.Draft
	return uc.add(ctx, s, planner.AddTaskInput{
		Title:     d.Title,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Color:     d.Color,
	})
}

// add must be called with the session locked.
func (uc *implUseCase) add(ctx context.Context, s *session.Session, input planner.AddTaskInput) (planner.AddTaskOutput, error) {
	if input.Title == "" {
		return planner.AddTaskOutput{}, planner.ErrEmptyTitle
	}

	duration, err := timeslot.Duration(input.StartTime, input.EndTime)
	if err != nil {
		uc.l.Warnf(ctx, "uc.AddTask Duration: %v", err)
		return planner.AddTaskOutput{}, planner.ErrInvalidTime
	}

	t, err := s.Tasks.CreateTask(ctx, repo.CreateTaskOptions{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Duration:  duration,
		Color:     input.Color,
		Date:      datemath.DayKey(s.State.Anchor),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTask CreateTask: %v", err)
		return planner.AddTaskOutput{}, err
	}

	s.State.Draft = planner.DefaultDraft()
	s.State.DialogOpen = false

	return planner.AddTaskOutput{Task: t}, nil
}

// ListForDay returns the tasks of one day in insertion order. An empty date means
// the active day.
func (uc *implUseCase) ListForDay(ctx context.Context, sc model.Scope, input planner.ListTasksInput) (planner.ListTasksOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return planner.ListTasksOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	day := datemath.DayKey(s.State.Anchor)
	if input.Date != "" {
		parsed, err := uc.calendar.ParseDayKey(input.Date)
		if err != nil {
			uc.l.Warnf(ctx, "uc.ListForDay ParseDayKey: %v", err)
			return planner.ListTasksOutput{}, planner.ErrInvalidDate
		}
		day = datemath.DayKey(parsed)
	}

	tasks, err := s.Tasks.ListTasks(ctx, repo.ListTasksOptions{Date: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForDay ListTasks: %v", err)
		return planner.ListTasksOutput{}, err
	}

	return planner.ListTasksOutput{Date: day, Tasks: tasks}, nil
}

// CompleteTask flags the task completed and swiping, then schedules its removal.
// An id that is not in the store is ignored. A task whose removal is already
// pending keeps its original schedule.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, input planner.CompleteTaskInput) (planner.CompleteTaskOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return planner.CompleteTaskOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	existing, err := s.Tasks.GetTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask GetTask: %v", err)
		return planner.CompleteTaskOutput{}, err
	}
	if existing.ID == 0 {
		uc.l.Debugf(ctx, "uc.CompleteTask: task %d not in store, ignoring", input.ID)
		return planner.CompleteTaskOutput{}, nil
	}

	t, err := s.Tasks.UpdateTask(ctx, repo.UpdateTaskOptions{ID: existing.ID, Completed: true, Swiping: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask UpdateTask: %v", err)
		return planner.CompleteTaskOutput{}, err
	}

	id := t.ID
	scheduled := s.Removals.Schedule(id, func() { uc.removeTask(s, id) })

	return planner.CompleteTaskOutput{
		Task:      t,
		Found:     true,
		Scheduled: scheduled,
		RemoveIn:  s.Removals.Delay(),
	}, nil
}

// removeTask is the deferred second phase of CompleteTask.
func (uc *implUseCase) removeTask(s *session.Session, id int) {
	ctx := pkgLog.SetSessionToContext(context.Background(), s.ID)

	s.Lock()
	defer s.Unlock()

	if err := s.Tasks.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.removeTask DeleteTask: %v", err)
		return
	}
	uc.l.Debugf(ctx, "uc.removeTask: removed task %d", id)
}
