package repository

import "weekly-task-planner/internal/planner"

// CreateTaskOptions holds parameters for appending a new Task. The id is assigned
// by the store.
type CreateTaskOptions struct {
	Title     string
	StartTime string
	EndTime   string
	Duration  string
	Color     planner.Color
	Date      string
}

// ListTasksOptions selects the Tasks of one day by exact day key.
type ListTasksOptions struct {
	Date string
}

// UpdateTaskOptions sets the mutable flags of an existing Task.
type UpdateTaskOptions struct {
	ID        int
	Completed bool
	Swiping   bool
}
