package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Calendar derives week windows and navigates anchors in a fixed location.
type Calendar struct {
	location  *time.Location
	weekStart time.Weekday
}

// NewCalendar creates a Calendar for the given IANA timezone ("Local" and "UTC" are
// accepted) whose weeks begin on weekStart (e.g. "sunday").
func NewCalendar(timezone, weekStart string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	start, err := ParseWeekday(weekStart)
	if err != nil {
		return nil, err
	}
	return &Calendar{location: loc, weekStart: start}, nil
}

// ParseWeekday maps an English weekday name (any case) to time.Weekday.
// An empty name means Sunday.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday: %q", name)
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// WeekStart returns the first weekday of every window.
func (c *Calendar) WeekStart() time.Weekday {
	return c.weekStart
}

// StartOfDay returns midnight of t's day in the calendar's location.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// WeekOf returns the 7 consecutive days of the week containing anchor, starting on
// the calendar's week start. IsToday is computed against today, never anchor.
func (c *Calendar) WeekOf(anchor, today time.Time) []Day {
	anchor = c.StartOfDay(anchor)
	offset := (int(anchor.Weekday()) - int(c.weekStart) + DaysInWeek) % DaysInWeek
	first := anchor.AddDate(0, 0, -offset)

	days := make([]Day, 0, DaysInWeek)
	for i := 0; i < DaysInWeek; i++ {
		d := first.AddDate(0, 0, i)
		days = append(days, Day{
			Date:       d,
			Key:        DayKey(d),
			DayOfMonth: d.Day(),
			Weekday:    d.Weekday(),
			Label:      weekdayLabels[d.Weekday()],
			IsToday:    SameDay(d, today.In(c.location)),
		})
	}
	return days
}

// ShiftWeek moves anchor by the given number of weeks (negative goes back).
func (c *Calendar) ShiftWeek(anchor time.Time, weeks int) time.Time {
	return anchor.AddDate(0, 0, weeks*DaysInWeek)
}

// SetMonth replaces the month of anchor, keeping year and day-of-month. A day that
// does not exist in the target month is clamped to that month's last day.
func (c *Calendar) SetMonth(anchor time.Time, month time.Month) time.Time {
	return clampDate(anchor, anchor.Year(), month)
}

// SetYear replaces the year of anchor with the same clamp policy as SetMonth
// (Feb 29 becomes Feb 28 in a common year).
func (c *Calendar) SetYear(anchor time.Time, year int) time.Time {
	return clampDate(anchor, year, anchor.Month())
}

// ParseDayKey parses "YYYY-MM-DD" into midnight of that day in the calendar's location.
func (c *Calendar) ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyFormat, strings.TrimSpace(key), c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// YearWindow lists anchor's year ± radius in ascending order.
func YearWindow(anchor time.Time, radius int) []int {
	if radius < 0 {
		radius = 0
	}
	years := make([]int, 0, 2*radius+1)
	for y := anchor.Year() - radius; y <= anchor.Year()+radius; y++ {
		years = append(years, y)
	}
	return years
}

// Months returns the twelve months in calendar order.
func Months() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}

// DayKey formats t as "YYYY-MM-DD" in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDate(t time.Time, year int, month time.Month) time.Time {
	day := t.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
