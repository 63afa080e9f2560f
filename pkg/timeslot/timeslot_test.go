package timeslot_test

import (
	"testing"

	"weekly-task-planner/pkg/timeslot"
)

func TestParse(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "12:00 AM", want: 0},
		{clock: "12:30 AM", want: 30},
		{clock: "09:00 AM", want: 540},
		{clock: "12:00 PM", want: 720},
		{clock: "01:00 PM", want: 780},
		{clock: "07:00 PM", want: 1140},
		{clock: "11:59 PM", want: 1439},
		{clock: "09:00", wantErr: true},
		{clock: "13:00 PM", wantErr: true},
		{clock: "09:75 AM", wantErr: true},
		{clock: "09:00 XM", wantErr: true},
		{clock: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, err := timeslot.Parse(tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "One hour", start: "10:00 AM", end: "11:00 AM", want: "01 Hours"},
		{name: "Across noon", start: "12:00 PM", end: "02:00 PM", want: "02 Hours"},
		{name: "Half hour", start: "09:00 AM", end: "09:30 AM", want: "30 Min"},
		{name: "Mixed", start: "10:00 AM", end: "11:30 AM", want: "01:30 Hours"},
		{name: "Zero", start: "10:00 AM", end: "10:00 AM", want: "00 Hours"},
		{name: "Whole ladder", start: "09:00 AM", end: "07:00 PM", want: "10 Hours"},
		{name: "Negative whole hours", start: "11:00 AM", end: "10:00 AM", want: "-1 Hours"},
		{name: "Negative mixed", start: "11:00 AM", end: "09:30 AM", want: "-2:-30 Hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeslot.Duration(tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}

	if _, err := timeslot.Duration("noon", "01:00 PM"); err == nil {
		t.Errorf("expected error for malformed start")
	}
}

func TestLadder(t *testing.T) {
	if len(timeslot.Ladder) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(timeslot.Ladder))
	}
	if timeslot.Ladder[0] != "09:00 AM" || timeslot.Ladder[10] != "07:00 PM" {
		t.Errorf("unexpected ladder bounds %q..%q", timeslot.Ladder[0], timeslot.Ladder[10])
	}
	if !timeslot.Contains("12:00 PM") {
		t.Errorf("expected 12:00 PM on the ladder")
	}
	if timeslot.Contains("09:30 AM") {
		t.Errorf("09:30 AM must not be on the ladder")
	}
}
