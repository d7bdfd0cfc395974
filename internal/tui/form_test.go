package tui

import (
	"testing"

	"github.com/pdxmph/planner-tui/internal/task"
)

func TestBuildTask(t *testing.T) {
	got, err := buildTask("  Write report ", " Q3 numbers ", "9:05", "45", task.PriorityHigh)
	if err != nil {
		t.Fatalf("buildTask: %v", err)
	}
	want := task.Task{
		Name:        "Write report",
		Description: "Q3 numbers",
		StartTime:   "09:05",
		Duration:    45,
		Priority:    task.PriorityHigh,
	}
	if got != want {
		t.Errorf("buildTask = %+v, want %+v", got, want)
	}
}

func TestBuildTaskRejects(t *testing.T) {
	cases := []struct {
		name     string
		taskName string
		start    string
		duration string
	}{
		{"empty name", "", "10:00", "30"},
		{"whitespace name", "   ", "10:00", "30"},
		{"empty start", "x", "", "30"},
		{"bad start", "x", "10.00", "30"},
		{"hour out of range", "x", "24:00", "30"},
		{"minute out of range", "x", "10:75", "30"},
		{"empty duration", "x", "10:00", ""},
		{"zero duration", "x", "10:00", "0"},
		{"negative duration", "x", "10:00", "-10"},
		{"non-numeric duration", "x", "10:00", "soon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := buildTask(tc.taskName, "", tc.start, tc.duration, task.PriorityLow); err == nil {
				t.Errorf("buildTask accepted name=%q start=%q duration=%q", tc.taskName, tc.start, tc.duration)
			}
		})
	}
}

func TestParseLooseClockPads(t *testing.T) {
	h, m, err := parseLooseClock("7:5")
	if err != nil {
		t.Fatalf("parseLooseClock: %v", err)
	}
	if got := task.FormatClock(h, m); got != "07:05" {
		t.Errorf("normalized clock = %q, want 07:05", got)
	}
}

func TestTimeWindow(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     string
	}{
		{"09:00", 30, "09:00-09:30"},
		{"09:45", 30, "09:45-10:15"},
		{"23:30", 90, "23:30-01:00"},
		{"00:00", 1440, "00:00-00:00"},
	}
	for _, tc := range cases {
		tk := task.Task{StartTime: tc.start, Duration: tc.duration}
		if got := timeWindow(tk); got != tc.want {
			t.Errorf("timeWindow(%s+%dm) = %q, want %q", tc.start, tc.duration, got, tc.want)
		}
	}
}
