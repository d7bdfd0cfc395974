package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/planner-tui/internal/task"
)

// Form field indices
const (
	formFieldName = iota
	formFieldDescription
	formFieldStart
	formFieldDuration
	formFieldPriority
	formFieldCount // Total number of fields
)

// formState holds the add-task form inputs. The priority field is a
// left/right selector rather than a text input.
type formState struct {
	name        textinput.Model
	description textarea.Model
	start       textinput.Model
	duration    textinput.Model
	priorityIdx int
	field       int
	errMsg      string
}

func newFormState() formState {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.Width = 40
	name.CharLimit = 100

	description := textarea.New()
	description.Placeholder = "Description (optional)"
	description.SetHeight(2)
	description.SetWidth(40)
	description.CharLimit = 500
	description.ShowLineNumbers = false

	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.Width = 8
	start.CharLimit = 5

	duration := textinput.New()
	duration.Placeholder = "Minutes"
	duration.Width = 8
	duration.CharLimit = 4

	return formState{
		name:        name,
		description: description,
		start:       start,
		duration:    duration,
		priorityIdx: 1, // medium
	}
}

func (f *formState) reset() {
	f.name.SetValue("")
	f.description.SetValue("")
	f.start.SetValue("")
	f.duration.SetValue("")
	f.priorityIdx = 1
	f.field = formFieldName
	f.errMsg = ""
	f.blurAll()
}

func (f *formState) setWidth(width int) {
	if width <= 0 {
		return
	}
	inner := width/2 - 16
	if inner < 20 {
		inner = 20
	}
	f.name.Width = inner
	f.description.SetWidth(inner)
}

func (f *formState) focusFirst() tea.Cmd {
	f.field = formFieldName
	f.name.Focus()
	return textinput.Blink
}

func (f *formState) blurAll() {
	f.name.Blur()
	f.description.Blur()
	f.start.Blur()
	f.duration.Blur()
}

// cycleFocus moves focus to the next or previous field.
func (f *formState) cycleFocus(forward bool) tea.Cmd {
	f.blurAll()
	if forward {
		f.field = (f.field + 1) % formFieldCount
	} else {
		f.field = (f.field + formFieldCount - 1) % formFieldCount
	}

	switch f.field {
	case formFieldName:
		f.name.Focus()
	case formFieldDescription:
		f.description.Focus()
		return textarea.Blink
	case formFieldStart:
		f.start.Focus()
	case formFieldDuration:
		f.duration.Focus()
	case formFieldPriority:
		return nil
	}
	return textinput.Blink
}

func (f *formState) cyclePriority(forward bool) {
	n := len(task.Priorities)
	if forward {
		f.priorityIdx = (f.priorityIdx + 1) % n
	} else {
		f.priorityIdx = (f.priorityIdx + n - 1) % n
	}
}

// updateInput routes a key to whichever input has focus.
func (f *formState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case formFieldName:
		f.name, cmd = f.name.Update(msg)
	case formFieldDescription:
		f.description, cmd = f.description.Update(msg)
	case formFieldStart:
		f.start, cmd = f.start.Update(msg)
	case formFieldDuration:
		f.duration, cmd = f.duration.Update(msg)
	}
	return cmd
}

// buildTask validates the form and assembles the record. Validation
// failures leave the form untouched so the user can correct them.
func (f *formState) buildTask() (task.Task, error) {
	return buildTask(
		f.name.Value(),
		f.description.Value(),
		f.start.Value(),
		f.duration.Value(),
		task.Priorities[f.priorityIdx],
	)
}

// buildTask constructs a task record from raw form values. The start
// time is normalized to zero-padded HH:MM so display sorting works on
// the stored string.
func buildTask(name, description, start, duration string, priority task.Priority) (task.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return task.Task{}, fmt.Errorf("task name is required")
	}

	hour, minute, err := parseLooseClock(start)
	if err != nil {
		return task.Task{}, err
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil || minutes <= 0 {
		return task.Task{}, fmt.Errorf("duration must be a positive number of minutes")
	}

	return task.Task{
		Name:        name,
		Description: strings.TrimSpace(description),
		StartTime:   task.FormatClock(hour, minute),
		Duration:    minutes,
		Priority:    priority,
	}, nil
}

// parseLooseClock accepts "H:MM" as well as "HH:MM"; the browser time
// widget always padded, a terminal user won't.
func parseLooseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("start time must look like HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("start time hour must be 0-23")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("start time minute must be 0-59")
	}
	return hour, minute, nil
}
