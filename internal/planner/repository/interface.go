package repository

import (
	"context"

	"weekly-task-planner/internal/planner"
)

// Repository is the composed interface for the planner task store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (planner.Task, error)
	GetTask(ctx context.Context, id int) (planner.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]planner.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (planner.Task, error)
	DeleteTask(ctx context.Context, id int) error
	CountTasks(ctx context.Context) (int, error)
}
