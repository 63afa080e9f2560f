package planner

import (
	"context"

	"weekly-task-planner/internal/model"
)

// UseCase drives one planner session: week navigation, the task list of the active
// day, and the transient view state around them.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// View composition
	View(ctx context.Context, sc model.Scope) (ViewOutput, error)
	ShiftWeek(ctx context.Context, sc model.Scope, weeks int) (ViewOutput, error)
	SelectDay(ctx context.Context, sc model.Scope, input SelectDayInput) (ViewOutput, error)
	SetMonth(ctx context.Context, sc model.Scope, input SetMonthInput) (ViewOutput, error)
	SetYear(ctx context.Context, sc model.Scope, input SetYearInput) (ViewOutput, error)
	SetPicker(ctx context.Context, sc model.Scope, input SetPickerInput) (ViewOutput, error)
	SetDialog(ctx context.Context, sc model.Scope, input SetDialogInput) (ViewOutput, error)
	UpdateDraft(ctx context.Context, sc model.Scope, input UpdateDraftInput) (ViewOutput, error)

	// Tasks
	AddTask(ctx context.Context, sc model.Scope, input AddTaskInput) (AddTaskOutput, error)
	SubmitDraft(ctx context.Context, sc model.Scope) (AddTaskOutput, error)
	ListForDay(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	CompleteTask(ctx context.Context, sc model.Scope, input CompleteTaskInput) (CompleteTaskOutput, error)
}
