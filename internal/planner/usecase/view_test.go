package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekly-task-planner/internal/planner"
)

func TestView(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh session", func(t *testing.T) {
		f := setup(t)
		view, err := f.uc.View(ctx, f.sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if view.ActiveDay != "2024-05-01" || view.Today != "2024-05-01" {
			t.Errorf("unexpected days %s / %s", view.ActiveDay, view.Today)
		}
		if view.Heading != "Wednesday 1 May" || view.MonthName != "May" || view.Year != 2024 {
			t.Errorf("unexpected header %q %q %d", view.Heading, view.MonthName, view.Year)
		}
		if len(view.Week) != 7 || view.Week[0].Date != "2024-04-28" || view.Week[0].DayOfWeek != "Sun" {
			t.Fatalf("unexpected week %+v", view.Week)
		}
		if !view.Week[3].IsToday || !view.Week[3].IsSelected {
			t.Errorf("Wednesday should be today and selected: %+v", view.Week[3])
		}
		if view.EmptyMessage == "" || view.TaskCount != 0 || len(view.Slots) != 0 {
			t.Errorf("expected an empty day, got %+v", view)
		}
		if view.Dialog.CanSubmit {
			t.Error("submit must be disabled with an empty title")
		}
		if len(view.Dialog.TimeSlots) != 11 || len(view.Dialog.Colors) != 3 {
			t.Errorf("unexpected dialog choices %+v", view.Dialog)
		}
		if len(view.MonthPicker.Options) != 12 || len(view.YearPicker.Options) != 21 {
			t.Errorf("unexpected picker sizes %d / %d", len(view.MonthPicker.Options), len(view.YearPicker.Options))
		}
		if !view.MonthPicker.Options[4].Selected || !view.YearPicker.Options[10].Selected {
			t.Error("current month and year should be selected")
		}
	})

	t.Run("Grouped by ladder slot", func(t *testing.T) {
		f := setup(t)
		f.uc.AddTask(ctx, f.sc, planner.AddTaskInput{Title: "b", StartTime: "02:00 PM", EndTime: "03:00 PM", Color: planner.ColorBlue})
		f.uc.AddTask(ctx, f.sc, standup())
		f.uc.AddTask(ctx, f.sc, planner.AddTaskInput{Title: "c", StartTime: "02:00 PM", EndTime: "04:00 PM", Color: planner.ColorRed})

		view, _ := f.uc.View(ctx, f.sc)
		if len(view.Slots) != 2 {
			t.Fatalf("expected 2 groups, got %+v", view.Slots)
		}
		if view.Slots[0].Time != "09:00 AM" || view.Slots[1].Time != "02:00 PM" {
			t.Errorf("groups out of ladder order: %+v", view.Slots)
		}
		if got := view.Slots[1].Tasks; len(got) != 2 || got[0].Title != "b" || got[1].Title != "c" {
			t.Errorf("unexpected slot tasks %+v", got)
		}
	})

	t.Run("Off-ladder start is stored but not grouped", func(t *testing.T) {
		f := setup(t)
		f.uc.AddTask(ctx, f.sc, planner.AddTaskInput{Title: "odd", StartTime: "09:30 AM", EndTime: "10:00 AM", Color: planner.ColorBlue})

		view, _ := f.uc.View(ctx, f.sc)
		if len(view.Slots) != 0 {
			t.Errorf("off-ladder task should not be grouped: %+v", view.Slots)
		}
		list, _ := f.uc.ListForDay(ctx, f.sc, planner.ListTasksInput{})
		if len(list.Tasks) != 1 || list.Tasks[0].Duration != "30 Min" {
			t.Errorf("off-ladder task should still be listed: %+v", list.Tasks)
		}
	})
}

func TestNavigation(t *testing.T) {
	ctx := context.Background()

	t.Run("Shift week round trip", func(t *testing.T) {
		f := setup(t)
		next, err := f.uc.ShiftWeek(ctx, f.sc, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.ActiveDay != "2024-05-08" || next.Week[0].Date != "2024-05-05" {
			t.Errorf("unexpected next week %s / %s", next.ActiveDay, next.Week[0].Date)
		}
		for _, d := range next.Week {
			if d.IsToday {
				t.Errorf("today flagged in next week: %+v", d)
			}
		}

		back, _ := f.uc.ShiftWeek(ctx, f.sc, -1)
		if back.ActiveDay != "2024-05-01" {
			t.Errorf("round trip landed on %s", back.ActiveDay)
		}
	})

	t.Run("Select day outside the week", func(t *testing.T) {
		f := setup(t)
		view, err := f.uc.SelectDay(ctx, f.sc, planner.SelectDayInput{Date: "2024-06-12"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Week[0].Date != "2024-06-09" || !view.Week[3].IsSelected {
			t.Errorf("unexpected week %+v", view.Week)
		}
	})

	t.Run("Invalid day keeps state", func(t *testing.T) {
		f := setup(t)
		if _, err := f.uc.SelectDay(ctx, f.sc, planner.SelectDayInput{Date: "2024-13-40"}); !errors.Is(err, planner.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
		view, _ := f.uc.View(ctx, f.sc)
		if view.ActiveDay != "2024-05-01" {
			t.Errorf("active day changed to %s", view.ActiveDay)
		}
	})

	t.Run("Month clamps and closes picker", func(t *testing.T) {
		f := setup(t)
		f.uc.SelectDay(ctx, f.sc, planner.SelectDayInput{Date: "2024-05-31"})
		f.uc.SetPicker(ctx, f.sc, planner.SetPickerInput{Picker: planner.PickerMonth, Open: true})

		view, err := f.uc.SetMonth(ctx, f.sc, planner.SetMonthInput{Month: time.June})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActiveDay != "2024-06-30" {
			t.Errorf("expected clamp to 2024-06-30, got %s", view.ActiveDay)
		}
		if view.MonthPicker.Open {
			t.Error("month picker still open")
		}
	})

	t.Run("Year replaces year and closes picker", func(t *testing.T) {
		f := setup(t)
		f.uc.SetPicker(ctx, f.sc, planner.SetPickerInput{Picker: planner.PickerYear, Open: true})

		view, err := f.uc.SetYear(ctx, f.sc, planner.SetYearInput{Year: 2030})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ActiveDay != "2030-05-01" || view.YearPicker.Open {
			t.Errorf("unexpected view %s open=%v", view.ActiveDay, view.YearPicker.Open)
		}
		if first := view.YearPicker.Options[0].Value; first != 2020 {
			t.Errorf("year window should follow the anchor, starts at %d", first)
		}
	})
}

func TestPickersAndDraft(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.uc.SetPicker(ctx, f.sc, planner.SetPickerInput{Picker: planner.PickerMonth, Open: true})
	view, _ := f.uc.SetPicker(ctx, f.sc, planner.SetPickerInput{Picker: planner.PickerYear, Open: true})
	if !view.MonthPicker.Open || !view.YearPicker.Open {
		t.Error("both pickers may be open at once")
	}

	if _, err := f.uc.SetPicker(ctx, f.sc, planner.SetPickerInput{Picker: "week", Open: true}); !errors.Is(err, planner.ErrUnknownPicker) {
		t.Errorf("expected ErrUnknownPicker, got %v", err)
	}

	title := "Plan"
	view, _ = f.uc.UpdateDraft(ctx, f.sc, planner.UpdateDraftInput{Title: &title})
	if view.Dialog.Draft.Title != "Plan" || view.Dialog.Draft.StartTime != "10:00 AM" || !view.Dialog.CanSubmit {
		t.Errorf("unexpected draft %+v", view.Dialog)
	}

	view, _ = f.uc.SetDialog(ctx, f.sc, planner.SetDialogInput{Open: false})
	if view.Dialog.Draft.Title != "Plan" {
		t.Error("closing the dialog must keep the draft")
	}
}
