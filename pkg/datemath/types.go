package datemath

import "time"

// DayKeyFormat is the layout of a calendar-day key ("YYYY-MM-DD").
const DayKeyFormat = "2006-01-02"

// DaysInWeek is the length of every window produced by WeekOf.
const DaysInWeek = 7

// Day is one cell of a week strip.
type Day struct {
	Date       time.Time
	Key        string
	DayOfMonth int
	Weekday    time.Weekday
	Label      string // "Sun" … "Sat"
	IsToday    bool
}

var weekdayLabels = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
