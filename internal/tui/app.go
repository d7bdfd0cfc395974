package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/planner-tui/internal/config"
	"github.com/pdxmph/planner-tui/internal/store"
	"github.com/pdxmph/planner-tui/internal/task"
)

// Model represents the main application state
type Model struct {
	store    *store.Store
	cfg      *config.Config
	tasks    []task.Task
	selected int
	width    int
	height   int
	now      time.Time
	err      error

	// Add-task form
	formMode bool
	form     formState

	// Delete confirmation mode
	deleteConfirmMode bool
	deleteTaskID      int64
	deleteTaskName    string

	// Already-overdue confirmation when creating a task
	overdueConfirmMode bool
	pendingTask        task.Task

	// Clear-all confirmation mode
	clearConfirmMode bool
}

// clockTickMsg drives the clock readout, once per second.
type clockTickMsg time.Time

// statusTickMsg forces a status re-evaluation, once per minute. The
// render recomputes every status from the wall clock, so the tick
// carries no data.
type statusTickMsg time.Time

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model
func New(s *store.Store, cfg *config.Config) (*Model, error) {
	m := &Model{
		store: s,
		cfg:   cfg,
		tasks: s.Tasks(),
		now:   time.Now(),
		form:  newFormState(),
	}
	return m, nil
}

// Init starts the two timers: the 1s clock tick and the 60s status
// re-evaluation tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(clockTick(), statusTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return statusTickMsg(t) })
}

// refresh pulls the collection from the store and clamps the
// selection to the open view.
func (m *Model) refresh() {
	m.tasks = m.store.Tasks()
	m.selected = m.ensureValidSelection()
}

// openTasks returns the open view in display order.
func (m *Model) openTasks() []task.Task {
	open, _ := task.Split(m.tasks)
	return open
}

// doneTasks returns the completed view in display order.
func (m *Model) doneTasks() []task.Task {
	_, done := task.Split(m.tasks)
	return done
}

// ensureValidSelection ensures the current selection is within bounds
func (m *Model) ensureValidSelection() int {
	open := m.openTasks()
	if len(open) == 0 {
		return 0
	}
	if m.selected >= len(open) {
		return len(open) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.setWidth(m.width)
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()

	case statusTickMsg:
		// Statuses derive from the clock on render; rescheduling the
		// tick is all that is needed to keep stale views moving.
		return m, statusTick()

	case tea.KeyMsg:
		// Overdue-at-creation confirmation handling
		if m.overdueConfirmMode {
			switch msg.String() {
			case "y", "Y":
				m.appendTask(m.pendingTask)
				m.overdueConfirmMode = false
				m.pendingTask = task.Task{}
				return m, nil
			default:
				// Any other key returns to the form
				m.overdueConfirmMode = false
				m.pendingTask = task.Task{}
				return m, nil
			}
		}

		// Delete confirmation mode handling
		if m.deleteConfirmMode {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Remove(m.deleteTaskID); err != nil {
					m.err = err
				} else {
					m.refresh()
				}
				m.deleteConfirmMode = false
				m.deleteTaskID = 0
				m.deleteTaskName = ""
				return m, nil
			default:
				m.deleteConfirmMode = false
				m.deleteTaskID = 0
				m.deleteTaskName = ""
				return m, nil
			}
		}

		// Clear-all confirmation mode handling
		if m.clearConfirmMode {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Clear(); err != nil {
					m.err = err
				} else {
					m.refresh()
				}
				m.clearConfirmMode = false
				return m, nil
			default:
				m.clearConfirmMode = false
				return m, nil
			}
		}

		// Form mode handling
		if m.formMode {
			return m.updateForm(msg)
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.openTasks())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "a":
			m.formMode = true
			m.form.reset()
			m.form.setWidth(m.width)
			return m, m.form.focusFirst()

		case "c":
			open := m.openTasks()
			if len(open) > 0 && m.selected < len(open) {
				if err := m.store.MarkCompleted(open[m.selected].ID); err != nil {
					m.err = err
				} else {
					m.refresh()
				}
			}

		case "d":
			open := m.openTasks()
			if len(open) > 0 && m.selected < len(open) {
				m.deleteConfirmMode = true
				m.deleteTaskID = open[m.selected].ID
				m.deleteTaskName = open[m.selected].Name
			}
			return m, nil

		case "C":
			if m.store.Len() > 0 {
				m.clearConfirmMode = true
			}
			return m, nil
		}
	}

	return m, nil
}

// appendTask inserts a validated task and refreshes the views.
func (m *Model) appendTask(t task.Task) {
	if _, err := m.store.Append(t); err != nil {
		m.err = err
		return
	}
	m.refresh()
	m.formMode = false
	m.form.blurAll()
}

// submitForm validates the form and either inserts the task or asks
// for confirmation when it would be born overdue.
func (m *Model) submitForm() {
	t, err := m.form.buildTask()
	if err != nil {
		m.form.errMsg = err.Error()
		return
	}

	end, err := t.EndAt(m.now)
	if err == nil && !end.After(m.now) {
		m.overdueConfirmMode = true
		m.pendingTask = t
		return
	}

	m.appendTask(t)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.formMode = false
		m.form.blurAll()
		return m, nil

	case "enter":
		m.submitForm()
		return m, nil

	case "tab", "shift+tab":
		return m, m.form.cycleFocus(msg.String() == "tab")

	case "left", "right":
		if m.form.field == formFieldPriority {
			m.form.cyclePriority(msg.String() == "right")
			return m, nil
		}
	}

	cmd := m.form.updateInput(msg)
	return m, cmd
}

// statusStyle maps a derived status to its display style.
func statusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusActive:
		return activeStyle
	case task.StatusOverdue:
		return overdueStyle
	case task.StatusCompleted:
		return doneStyle
	default:
		return pendingStyle
	}
}

// timeWindow renders a task's start and computed end as
// "HH:MM–HH:MM". The end wraps past midnight within the day window.
func timeWindow(t task.Task) string {
	hour, minute, err := task.ParseClock(t.StartTime)
	if err != nil {
		return t.StartTime
	}
	endMinutes := (hour*60 + minute + t.Duration) % (24 * 60)
	return fmt.Sprintf("%s-%s", t.StartTime, task.FormatClock(endMinutes/60, endMinutes%60))
}
