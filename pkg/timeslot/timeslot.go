// Package timeslot handles 12-hour "hh:mm AM|PM" clock strings: the fixed slot
// ladder offered to users and the duration text shown on each task.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerHour = 60

// Ladder is the fixed list of selectable start/end times.
var Ladder = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
	"07:00 PM",
}

// Contains reports whether slot is one of the Ladder entries (exact match).
func Contains(slot string) bool {
	for _, s := range Ladder {
		if s == slot {
			return true
		}
	}
	return false
}

// Parse converts "hh:mm AM|PM" into minutes since midnight.
// 12 AM is hour 0, 12 PM stays 12, other PM hours add 12.
func Parse(clock string) (int, error) {
	clock = strings.TrimSpace(clock)
	hm, meridiem, ok := strings.Cut(clock, " ")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q: missing AM/PM", clock)
	}
	hourStr, minuteStr, ok := strings.Cut(hm, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q: missing minutes", clock)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid clock %q: bad hour", clock)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute >= minutesPerHour {
		return 0, fmt.Errorf("invalid clock %q: bad minute", clock)
	}

	switch strings.ToUpper(strings.TrimSpace(meridiem)) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("invalid clock %q: bad meridiem", clock)
	}

	return hour*minutesPerHour + minute, nil
}

// Duration renders the span between two clock strings:
// whole hours "HH Hours", under an hour "M Min", otherwise "HH:MM Hours".
// An end before start is not rejected and renders negative parts.
func Duration(start, end string) (string, error) {
	startMin, err := Parse(start)
	if err != nil {
		return "", err
	}
	endMin, err := Parse(end)
	if err != nil {
		return "", err
	}
	return FormatMinutes(endMin - startMin), nil
}

// FormatMinutes renders a minute count with floored hours, so -90 becomes
// "-2:-30 Hours" rather than "-1:-30 Hours".
func FormatMinutes(total int) string {
	hours := floorDiv(total, minutesPerHour)
	minutes := total % minutesPerHour

	switch {
	case minutes == 0:
		return fmt.Sprintf("%02d Hours", hours)
	case hours == 0:
		return fmt.Sprintf("%d Min", minutes)
	default:
		return fmt.Sprintf("%02d:%02d Hours", hours, minutes)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
