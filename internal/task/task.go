package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Task is one schedulable unit of work for the current day.
// The JSON field names are the snapshot wire format; changing them
// invalidates existing snapshots.
type Task struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"startTime"`
	Duration    int      `json:"duration"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// Priority orders tasks in the presentation views.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the valid priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Weight returns the sort weight of a priority. Unknown priorities
// weigh the same as low so a hand-edited snapshot still renders.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the derived display state of a task. It is never stored;
// every render recomputes it from the wall clock.
type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusOverdue
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusOverdue:
		return "overdue"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ParseClock parses a zero-padded 24-hour "HH:MM" string into hour and
// minute components.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// FormatClock renders hour and minute as zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// StartAt returns the task's start instant anchored to now's calendar
// date. The anchor is always "today" as seen at evaluation time, so a
// 23:00 task viewed after midnight resolves against the new day.
func (t Task) StartAt(now time.Time) (time.Time, error) {
	hour, minute, err := ParseClock(t.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// EndAt returns start + duration. The end instant may land past
// midnight; that is still measured from today's anchor.
func (t Task) EndAt(now time.Time) (time.Time, error) {
	start, err := t.StartAt(now)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(t.Duration) * time.Minute), nil
}

// StatusAt resolves the task's display status against now.
// Completed wins unconditionally; otherwise the window [start, end)
// splits the day into pending, active and overdue.
func (t Task) StatusAt(now time.Time) Status {
	if t.Completed {
		return StatusCompleted
	}
	start, err := t.StartAt(now)
	if err != nil {
		// Unparseable start never happens for store-created tasks;
		// treat a corrupt record as overdue so it stays visible.
		return StatusOverdue
	}
	end := start.Add(time.Duration(t.Duration) * time.Minute)
	switch {
	case now.Before(start):
		return StatusPending
	case now.Before(end):
		return StatusActive
	default:
		return StatusOverdue
	}
}

// SortForDisplay orders tasks for presentation: priority descending,
// ties broken by start time ascending. The sort is stable so equal
// tasks keep their store order. Lexicographic compare on zero-padded
// HH:MM strings is correct within a single day.
func SortForDisplay(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		wi, wj := tasks[i].Priority.Weight(), tasks[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		return tasks[i].StartTime < tasks[j].StartTime
	})
}

// Split partitions tasks into the open and completed views, each
// sorted for display.
func Split(tasks []Task) (open, done []Task) {
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}
	SortForDisplay(open)
	SortForDisplay(done)
	return open, done
}
