package planner

import "time"

// --- Domain Model ---

// Color is the category tag of a task. It carries no meaning beyond display.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
)

// Colors lists the selectable categories in display order.
var Colors = []Color{ColorRed, ColorBlue, ColorYellow}

// Valid reports whether c is one of Colors.
func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorBlue, ColorYellow:
		return true
	}
	return false
}

// Task is a single scheduled item. Date and Duration are fixed at creation;
// only Completed and Swiping change afterwards.
type Task struct {
	ID        int
	Title     string
	StartTime string // "hh:mm AM|PM"
	EndTime   string
	Duration  string
	Color     Color
	Date      string // "YYYY-MM-DD"
	Completed bool
	Swiping   bool // removal pending
}

// Draft is the add-task form.
type Draft struct {
	Title     string
	StartTime string
	EndTime   string
	Color     Color
}

// DefaultDraft is the form state on open and after each successful add.
func DefaultDraft() Draft {
	return Draft{
		Title:     "",
		StartTime: "10:00 AM",
		EndTime:   "11:00 AM",
		Color:     ColorBlue,
	}
}

// Picker names one of the header popovers.
type Picker string

const (
	PickerMonth Picker = "month"
	PickerYear  Picker = "year"
)

// ViewState is the transient UI state of one session.
type ViewState struct {
	Anchor          time.Time // active day; the visible week contains it
	Today           time.Time // captured when the session was opened
	MonthPickerOpen bool
	YearPickerOpen  bool
	DialogOpen      bool
	Draft           Draft
}

// --- UseCase Inputs ---

type SelectDayInput struct {
	Date string
}

type SetMonthInput struct {
	Month time.Month
}

type SetYearInput struct {
	Year int
}

type SetPickerInput struct {
	Picker Picker
	Open   bool
}

type SetDialogInput struct {
	Open bool
}

// UpdateDraftInput carries a partial form update; nil fields are left untouched.
type UpdateDraftInput struct {
	Title     *string
	StartTime *string
	EndTime   *string
	Color     *Color
}

type AddTaskInput struct {
	Title     string
	StartTime string
	EndTime   string
	Color     Color
}

// ListTasksInput selects a day; an empty Date means the active day.
type ListTasksInput struct {
	Date string
}

type CompleteTaskInput struct {
	ID int
}

// --- UseCase Outputs ---

// DayCell is one entry of the week strip.
type DayCell struct {
	Date       string
	DayOfMonth int
	DayOfWeek  string
	IsToday    bool
	IsSelected bool
}

// SlotGroup is the tasks starting at one ladder slot.
type SlotGroup struct {
	Time  string
	Tasks []Task
}

type PickerOption struct {
	Value    int
	Label    string
	Selected bool
}

type PickerView struct {
	Open    bool
	Options []PickerOption
}

type DialogView struct {
	Open      bool
	Draft     Draft
	CanSubmit bool
	TimeSlots []string
	Colors    []Color
}

// ViewOutput is the full render model of the planner.
type ViewOutput struct {
	Today        string
	ActiveDay    string
	Heading      string
	MonthName    string
	Month        time.Month
	Year         int
	Week         []DayCell
	Slots        []SlotGroup
	TaskCount    int
	EmptyMessage string
	MonthPicker  PickerView
	YearPicker   PickerView
	Dialog       DialogView
}

type AddTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Date  string
	Tasks []Task
}

// CompleteTaskOutput reports the flagged task. Found is false when the id is not
// in the store, in which case nothing happened.
type CompleteTaskOutput struct {
	Task      Task
	Found     bool
	Scheduled bool
	RemoveIn  time.Duration
}
