package memory

import (
	"context"

	"weekly-task-planner/internal/planner"
	repo "weekly-task-planner/internal/planner/repository"
)

// CreateTask appends a new Task and returns it with its assigned id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (planner.Task, error) {
	if opt.Title == "" || opt.Date == "" {
		r.l.Errorf(ctx, "%s: title and date are required", r.dsn("CreateTask"))
		return planner.Task{}, repo.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	t := planner.Task{
		ID:        r.lastID,
		Title:     opt.Title,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		Duration:  opt.Duration,
		Color:     opt.Color,
		Date:      opt.Date,
	}
	r.tasks = append(r.tasks, t)
	return t, nil
}

// GetTask returns the Task with the given id.
// Returns zero-value Task (ID == 0) when not found, without an error.
func (r *implRepository) GetTask(ctx context.Context, id int) (planner.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], nil
	}
	return planner.Task{}, nil
}

// ListTasks returns matching Tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]planner.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]planner.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Date != "" && t.Date != opt.Date {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// UpdateTask sets the completion flags of a Task.
// Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (planner.Task, error) {
	if opt.ID <= 0 {
		r.l.Errorf(ctx, "%s: invalid id %d", r.dsn("UpdateTask"), opt.ID)
		return planner.Task{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return planner.Task{}, nil
	}
	r.tasks[i].Completed = opt.Completed
	r.tasks[i].Swiping = opt.Swiping
	return r.tasks[i], nil
}

// DeleteTask removes a Task by id. Removing an unknown id is a no-op.
func (r *implRepository) DeleteTask(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// CountTasks returns the number of stored Tasks.
func (r *implRepository) CountTasks(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}
