package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/planner-tui/internal/config"
	"github.com/pdxmph/planner-tui/internal/store"
	"github.com/pdxmph/planner-tui/internal/task"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, tasks ...task.Task) *Model {
	t.Helper()
	s, err := store.Open("memory", "")
	if err != nil {
		t.Fatalf("opening memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	for _, tk := range tasks {
		if _, err := s.Append(tk); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}

	m, err := New(s, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.width = 100
	m.height = 40
	return m
}

func TestMarkCompleteMovesTaskToDoneTable(t *testing.T) {
	m := newTestModel(t,
		task.Task{Name: "first", StartTime: "09:00", Duration: 30, Priority: task.PriorityHigh},
		task.Task{Name: "second", StartTime: "10:00", Duration: 30, Priority: task.PriorityLow},
	)

	m.Update(key("c"))

	if got := len(m.openTasks()); got != 1 {
		t.Fatalf("open tasks = %d, want 1", got)
	}
	done := m.doneTasks()
	if len(done) != 1 || done[0].Name != "first" {
		t.Errorf("done = %v, want [first]", done)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t,
		task.Task{Name: "only", StartTime: "09:00", Duration: 30, Priority: task.PriorityMedium},
	)

	m.Update(key("d"))
	if !m.deleteConfirmMode {
		t.Fatal("d did not enter delete confirmation")
	}

	// Any key but y cancels
	m.Update(key("n"))
	if m.deleteConfirmMode || m.store.Len() != 1 {
		t.Fatal("cancel deleted the task")
	}

	m.Update(key("d"))
	m.Update(key("y"))
	if m.store.Len() != 0 {
		t.Error("confirmed delete left the task in the store")
	}
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	m := newTestModel(t,
		task.Task{Name: "a", StartTime: "09:00", Duration: 30, Priority: task.PriorityLow},
		task.Task{Name: "b", StartTime: "10:00", Duration: 30, Priority: task.PriorityLow},
	)

	m.Update(key("C"))
	if !m.clearConfirmMode {
		t.Fatal("C did not enter clear confirmation")
	}
	m.Update(key("x"))
	if m.store.Len() != 2 {
		t.Fatal("cancelled clear removed tasks")
	}

	m.Update(key("C"))
	m.Update(key("y"))
	if m.store.Len() != 0 {
		t.Error("confirmed clear left tasks behind")
	}
}

func TestSubmitInvalidFormKeepsStoreUntouched(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("a"))
	if !m.formMode {
		t.Fatal("a did not open the form")
	}

	// Empty form: submit must fail validation and stay in the form
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.formMode {
		t.Error("invalid submission closed the form")
	}
	if m.form.errMsg == "" {
		t.Error("invalid submission produced no message")
	}
	if m.store.Len() != 0 {
		t.Error("invalid submission mutated the store")
	}
}

func TestSubmitOverdueTaskAsksForConfirmation(t *testing.T) {
	m := newTestModel(t)
	// Pin the clock so the morning window below is deterministically over.
	m.now = time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	m.Update(key("a"))
	m.form.name.SetValue("yesterday's call")
	m.form.start.SetValue("09:00")
	m.form.duration.SetValue("30")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.overdueConfirmMode {
		t.Fatal("overdue submission skipped confirmation")
	}
	if m.store.Len() != 0 {
		t.Fatal("task stored before confirmation")
	}

	m.Update(key("y"))
	if m.store.Len() != 1 {
		t.Error("confirmed overdue task was not stored")
	}
	if m.formMode {
		t.Error("form still open after confirmed insert")
	}
}

func TestSelectionStaysInBounds(t *testing.T) {
	m := newTestModel(t,
		task.Task{Name: "a", StartTime: "09:00", Duration: 30, Priority: task.PriorityLow},
		task.Task{Name: "b", StartTime: "10:00", Duration: 30, Priority: task.PriorityLow},
	)

	m.Update(key("j"))
	if m.selected != 1 {
		t.Fatalf("selected = %d after j, want 1", m.selected)
	}
	m.Update(key("j"))
	if m.selected != 1 {
		t.Fatalf("selection ran past the end: %d", m.selected)
	}

	// Deleting the last task must clamp the selection
	m.Update(key("d"))
	m.Update(key("y"))
	if m.selected != 0 {
		t.Errorf("selected = %d after delete, want 0", m.selected)
	}
}
