package usecase

import (
	"context"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
)

// ShiftWeek moves the active day by the given number of weeks.
func (uc *implUseCase) ShiftWeek(ctx context.Context, sc model.Scope, weeks int) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "ShiftWeek", func(st *planner.ViewState) error {
		st.Anchor = uc.calendar.ShiftWeek(st.Anchor, weeks)
		return nil
	})
}

// SelectDay makes the given day active. The visible week follows it.
func (uc *implUseCase) SelectDay(ctx context.Context, sc model.Scope, input planner.SelectDayInput) (planner.ViewOutput, error) {
	day, err := uc.calendar.ParseDayKey(input.Date)
	if err != nil {
		uc.l.Warnf(ctx, "uc.SelectDay ParseDayKey: %v", err)
		return planner.ViewOutput{}, planner.ErrInvalidDate
	}

	return uc.mutate(ctx, sc, "SelectDay", func(st *planner.ViewState) error {
		st.Anchor = day
		return nil
	})
}

// SetMonth replaces the month of the active day and closes the month picker.
func (uc *implUseCase) SetMonth(ctx context.Context, sc model.Scope, input planner.SetMonthInput) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "SetMonth", func(st *planner.ViewState) error {
		st.Anchor = uc.calendar.SetMonth(st.Anchor, input.Month)
		st.MonthPickerOpen = false
		return nil
	})
}

// SetYear replaces the year of the active day and closes the year picker.
func (uc *implUseCase) SetYear(ctx context.Context, sc model.Scope, input planner.SetYearInput) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "SetYear", func(st *planner.ViewState) error {
		st.Anchor = uc.calendar.SetYear(st.Anchor, input.Year)
		st.YearPickerOpen = false
		return nil
	})
}
