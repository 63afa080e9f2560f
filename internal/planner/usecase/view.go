package usecase

import (
	"context"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
	repo "weekly-task-planner/internal/planner/repository"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/timeslot"
)

const (
	headingLayout = "Monday 2 January"
	emptyMessage  = "No tasks scheduled for this day"
)

// View renders the current state of the session.
func (uc *implUseCase) View(ctx context.Context, sc model.Scope) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "View", func(st *planner.ViewState) error { return nil })
}

// SetPicker opens or closes one of the header popovers. Both may be open at once.
func (uc *implUseCase) SetPicker(ctx context.Context, sc model.Scope, input planner.SetPickerInput) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "SetPicker", func(st *planner.ViewState) error {
		switch input.Picker {
		case planner.PickerMonth:
			st.MonthPickerOpen = input.Open
		case planner.PickerYear:
			st.YearPickerOpen = input.Open
		default:
			return planner.ErrUnknownPicker
		}
		return nil
	})
}

// SetDialog opens or closes the add-task dialog. The draft survives a close.
func (uc *implUseCase) SetDialog(ctx context.Context, sc model.Scope, input planner.SetDialogInput) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "SetDialog", func(st *planner.ViewState) error {
		st.DialogOpen = input.Open
		return nil
	})
}

// UpdateDraft applies the provided fields to the add-task form.
func (uc *implUseCase) UpdateDraft(ctx context.Context, sc model.Scope, input planner.UpdateDraftInput) (planner.ViewOutput, error) {
	return uc.mutate(ctx, sc, "UpdateDraft", func(st *planner.ViewState) error {
		if input.Title != nil {
			st.Draft.Title = *input.Title
		}
		if input.StartTime != nil {
			st.Draft.StartTime = *input.StartTime
		}
		if input.EndTime != nil {
			st.Draft.EndTime = *input.EndTime
		}
		if input.Color != nil {
			st.Draft.Color = *input.Color
		}
		return nil
	})
}

// mutate runs fn against the session state under the session lock and renders the
// result. The state is left untouched when fn fails.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, op string, fn func(st *planner.ViewState) error) (planner.ViewOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return planner.ViewOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	next := s.State
	if err := fn(&next); err != nil {
		return planner.ViewOutput{}, err
	}
	s.State = next

	out, err := uc.render(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s render: %v", op, err)
		return planner.ViewOutput{}, err
	}
	return out, nil
}

// render must be called with the session locked.
func (uc *implUseCase) render(ctx context.Context, s *session.Session) (planner.ViewOutput, error) {
	st := s.State
	active := datemath.DayKey(st.Anchor)

	tasks, err := s.Tasks.ListTasks(ctx, repo.ListTasksOptions{Date: active})
	if err != nil {
		return planner.ViewOutput{}, err
	}

	days := uc.calendar.WeekOf(st.Anchor, st.Today)
	week := make([]planner.DayCell, 0, len(days))
	for _, d := range days {
		week = append(week, planner.DayCell{
			Date:       d.Key,
			DayOfMonth: d.DayOfMonth,
			DayOfWeek:  d.Label,
			IsToday:    d.IsToday,
			IsSelected: d.Key == active,
		})
	}

	out := planner.ViewOutput{
		Today:     datemath.DayKey(st.Today),
		ActiveDay: active,
		Heading:   st.Anchor.Format(headingLayout),
		MonthName: st.Anchor.Month().String(),
		Month:     st.Anchor.Month(),
		Year:      st.Anchor.Year(),
		Week:      week,
		Slots:     groupBySlot(tasks),
		TaskCount: len(tasks),
		MonthPicker: planner.PickerView{
			Open:    st.MonthPickerOpen,
			Options: uc.monthOptions(st),
		},
		YearPicker: planner.PickerView{
			Open:    st.YearPickerOpen,
			Options: uc.yearOptions(st),
		},
		Dialog: planner.DialogView{
			Open:      st.DialogOpen,
			Draft:     st.Draft,
			CanSubmit: st.Draft.Title != "",
			TimeSlots: append([]string(nil), timeslot.Ladder...),
			Colors:    append([]planner.Color(nil), planner.Colors...),
		},
	}
	if len(tasks) == 0 {
		out.EmptyMessage = emptyMessage
	}
	return out, nil
}
