package usecase

import (
	"strconv"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/internal/planner"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/timeslot"
)

// session resolves the Scope to an open session.
func (uc *implUseCase) session(sc model.Scope) (*session.Session, error) {
	s, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return nil, planner.ErrSessionNotFound
	}
	return s, nil
}

// groupBySlot buckets tasks under the ladder slot equal to their start time,
// keeping insertion order inside a slot. Empty slots are skipped and tasks whose
// start time is not on the ladder appear in no group.
func groupBySlot(tasks []planner.Task) []planner.SlotGroup {
	groups := make([]planner.SlotGroup, 0, len(timeslot.Ladder))
	for _, slot := range timeslot.Ladder {
		var at []planner.Task
		for _, t := range tasks {
			if t.StartTime == slot {
				at = append(at, t)
			}
		}
		if len(at) > 0 {
			groups = append(groups, planner.SlotGroup{Time: slot, Tasks: at})
		}
	}
	return groups
}

func (uc *implUseCase) monthOptions(st planner.ViewState) []planner.PickerOption {
	months := datemath.Months()
	opts := make([]planner.PickerOption, 0, len(months))
	for _, m := range months {
		opts = append(opts, planner.PickerOption{
			Value:    int(m),
			Label:    m.String(),
			Selected: st.Anchor.Month() == m,
		})
	}
	return opts
}

func (uc *implUseCase) yearOptions(st planner.ViewState) []planner.PickerOption {
	years := datemath.YearWindow(st.Anchor, uc.yearRadius)
	opts := make([]planner.PickerOption, 0, len(years))
	for _, y := range years {
		opts = append(opts, planner.PickerOption{
			Value:    y,
			Label:    strconv.Itoa(y),
			Selected: st.Anchor.Year() == y,
		})
	}
	return opts
}
