package http

import (
	"time"

	"weekly-task-planner/internal/planner"
	"weekly-task-planner/pkg/timeslot"
)

// --- Request DTOs ---

type selectDayReq struct {
	Date string `json:"date" binding:"required"`
}

func (r selectDayReq) toInput() planner.SelectDayInput {
	return planner.SelectDayInput{Date: r.Date}
}

// ---

type setMonthReq struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
}

func (r setMonthReq) toInput() planner.SetMonthInput {
	return planner.SetMonthInput{Month: time.Month(r.Month)}
}

// ---

type setYearReq struct {
	Year int `json:"year" binding:"required,min=1,max=9999"`
}

func (r setYearReq) toInput() planner.SetYearInput {
	return planner.SetYearInput{Year: r.Year}
}

// ---

type toggleReq struct {
	Open *bool `json:"open" binding:"required"`
}

// ---

type updateDraftReq struct {
	Title     *string `json:"title"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Color     *string `json:"color"`
}

func (r updateDraftReq) validate() error {
	if r.StartTime != nil && !timeslot.Contains(*r.StartTime) {
		return errTimeNotOnLadder
	}
	if r.EndTime != nil && !timeslot.Contains(*r.EndTime) {
		return errTimeNotOnLadder
	}
	if r.Color != nil && !planner.Color(*r.Color).Valid() {
		return errInvalidColor
	}
	return nil
}

func (r updateDraftReq) toInput() planner.UpdateDraftInput {
	in := planner.UpdateDraftInput{
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
	if r.Color != nil {
		c := planner.Color(*r.Color)
		in.Color = &c
	}
	return in
}

// ---

// addTaskReq leaves title unchecked here; the use case owns the empty-title rule.
type addTaskReq struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	Color     string `json:"color"      binding:"required,oneof=red blue yellow"`
}

func (r addTaskReq) validate() error {
	if !timeslot.Contains(r.StartTime) || !timeslot.Contains(r.EndTime) {
		return errTimeNotOnLadder
	}
	return nil
}

func (r addTaskReq) toInput() planner.AddTaskInput {
	return planner.AddTaskInput{
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Color:     planner.Color(r.Color),
	}
}

// ---

type listTasksReq struct {
	Date string `form:"date"`
}

func (r listTasksReq) toInput() planner.ListTasksInput {
	return planner.ListTasksInput{Date: r.Date}
}

// --- Response DTOs ---

type taskResp struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  string `json:"duration"`
	Color     string `json:"color"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Swiping   bool   `json:"swiping"`
}

func newTaskResp(t planner.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Duration:  t.Duration,
		Color:     string(t.Color),
		Date:      t.Date,
		Completed: t.Completed,
		Swiping:   t.Swiping,
	}
}

func newTaskResps(tasks []planner.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type dayResp struct {
	Date       string `json:"date"`
	DayOfMonth int    `json:"day_of_month"`
	DayOfWeek  string `json:"day_of_week"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
}

type slotResp struct {
	Time  string     `json:"time"`
	Tasks []taskResp `json:"tasks"`
}

type optionResp struct {
	Value    int    `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type pickerResp struct {
	Open    bool         `json:"open"`
	Options []optionResp `json:"options"`
}

func newPickerResp(p planner.PickerView) pickerResp {
	opts := make([]optionResp, len(p.Options))
	for i, o := range p.Options {
		opts[i] = optionResp{Value: o.Value, Label: o.Label, Selected: o.Selected}
	}
	return pickerResp{Open: p.Open, Options: opts}
}

type draftResp struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

type dialogResp struct {
	Open      bool      `json:"open"`
	Draft     draftResp `json:"draft"`
	CanSubmit bool      `json:"can_submit"`
	TimeSlots []string  `json:"time_slots"`
	Colors    []string  `json:"colors"`
}

type viewResp struct {
	Today        string     `json:"today"`
	ActiveDay    string     `json:"active_day"`
	Heading      string     `json:"heading"`
	MonthName    string     `json:"month_name"`
	Month        int        `json:"month"`
	Year         int        `json:"year"`
	Week         []dayResp  `json:"week"`
	Slots        []slotResp `json:"slots"`
	TaskCount    int        `json:"task_count"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	MonthPicker  pickerResp `json:"month_picker"`
	YearPicker   pickerResp `json:"year_picker"`
	Dialog       dialogResp `json:"dialog"`
}

func (h *handler) newViewResp(out planner.ViewOutput) viewResp {
	week := make([]dayResp, len(out.Week))
	for i, d := range out.Week {
		week[i] = dayResp{
			Date:       d.Date,
			DayOfMonth: d.DayOfMonth,
			DayOfWeek:  d.DayOfWeek,
			IsToday:    d.IsToday,
			IsSelected: d.IsSelected,
		}
	}

	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{Time: s.Time, Tasks: newTaskResps(s.Tasks)}
	}

	colors := make([]string, len(out.Dialog.Colors))
	for i, c := range out.Dialog.Colors {
		colors[i] = string(c)
	}

	d := out.Dialog.Draft
	return viewResp{
		Today:        out.Today,
		ActiveDay:    out.ActiveDay,
		Heading:      out.Heading,
		MonthName:    out.MonthName,
		Month:        int(out.Month),
		Year:         out.Year,
		Week:         week,
		Slots:        slots,
		TaskCount:    out.TaskCount,
		EmptyMessage: out.EmptyMessage,
		MonthPicker:  newPickerResp(out.MonthPicker),
		YearPicker:   newPickerResp(out.YearPicker),
		Dialog: dialogResp{
			Open:      out.Dialog.Open,
			Draft:     draftResp{Title: d.Title, StartTime: d.StartTime, EndTime: d.EndTime, Color: string(d.Color)},
			CanSubmit: out.Dialog.CanSubmit,
			TimeSlots: out.Dialog.TimeSlots,
			Colors:    colors,
		},
	}
}

type addTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newAddTaskResp(out planner.AddTaskOutput) addTaskResp {
	return addTaskResp{Task: newTaskResp(out.Task)}
}

type listTasksResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	return listTasksResp{Date: out.Date, Tasks: newTaskResps(out.Tasks), Total: len(out.Tasks)}
}

type completeTaskResp struct {
	Found      bool      `json:"found"`
	Scheduled  bool      `json:"scheduled"`
	RemoveInMS int64     `json:"remove_in_ms"`
	Task       *taskResp `json:"task,omitempty"`
}

func (h *handler) newCompleteTaskResp(out planner.CompleteTaskOutput) completeTaskResp {
	resp := completeTaskResp{Found: out.Found, Scheduled: out.Scheduled}
	if out.Found {
		t := newTaskResp(out.Task)
		resp.Task = &t
		resp.RemoveInMS = out.RemoveIn.Milliseconds()
	}
	return resp
}

type closeSessionResp struct {
	Closed bool `json:"closed"`
}
