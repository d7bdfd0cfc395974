package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/planner-tui/internal/task"
)

// View renders the UI
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	openView := m.renderOpenTable(m.width - 4)
	doneView := m.renderDoneTable(m.width - 4)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		borderStyle.Width(m.width-2).Render(openView),
		borderStyle.Width(m.width-2).Render(doneView),
	)

	help := m.renderHelp()
	view := lipgloss.JoinVertical(lipgloss.Left, content, help)

	// Overlay the add-task form if active
	if m.formMode && !m.overdueConfirmMode {
		return m.renderForm()
	}

	// Overlay confirmations if active
	if m.overdueConfirmMode {
		return m.renderOverdueConfirmation()
	}
	if m.deleteConfirmMode {
		return m.renderDeleteConfirmation()
	}
	if m.clearConfirmMode {
		return m.renderClearConfirmation()
	}

	return view
}

// renderHeader renders the title line with the live clock readout.
func (m *Model) renderHeader() string {
	title := "Task Planner"
	clock := clockStyle.Render(m.now.Format(m.cfg.UI.ClockFormat))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clock) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + title + strings.Repeat(" ", gap) + clock
}

// renderOpenTable renders the open tasks with status and actions.
func (m *Model) renderOpenTable(width int) string {
	open := m.openTasks()

	var lines []string
	lines = append(lines, fmt.Sprintf("Open tasks (%d)", len(open)))
	lines = append(lines, strings.Repeat("─", max(1, width)))

	if len(open) == 0 {
		lines = append(lines, "No open tasks. Press 'a' to add one.")
		return strings.Join(lines, "\n")
	}

	for i, t := range open {
		status := t.StatusAt(m.now)
		line := fmt.Sprintf("%-9s %-12s %-7s %s",
			status.String(),
			timeWindow(t),
			string(t.Priority),
			t.Name,
		)
		if t.Description != "" {
			line += doneStyle.Render("  · " + t.Description)
		}

		if i == m.selected {
			line = selectedStyle.Render("❯ " + line)
		} else {
			line = statusStyle(status).Render("  " + line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDoneTable renders the read-only completed view.
func (m *Model) renderDoneTable(width int) string {
	done := m.doneTasks()

	var lines []string
	lines = append(lines, fmt.Sprintf("Completed (%d)", len(done)))
	lines = append(lines, strings.Repeat("─", max(1, width)))

	if len(done) == 0 {
		lines = append(lines, doneStyle.Render("Nothing completed yet."))
		return strings.Join(lines, "\n")
	}

	for _, t := range done {
		line := fmt.Sprintf("  %-12s %-7s %s", timeWindow(t), string(t.Priority), t.Name)
		lines = append(lines, doneStyle.Render(line))
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line
func (m *Model) renderHelp() string {
	if m.overdueConfirmMode {
		return " y: add anyway • any other key: back"
	}
	if m.deleteConfirmMode {
		return " y: confirm delete • any other key: cancel"
	}
	if m.clearConfirmMode {
		return " y: delete everything • any other key: cancel"
	}
	if m.formMode {
		return " Tab: next field • ←/→: priority • Enter: save • Esc: cancel"
	}
	return " j/k: navigate • a: add • c: complete • d: delete • C: clear all • q: quit"
}

// renderForm renders the add-task form overlay
func (m *Model) renderForm() string {
	f := &m.form

	var lines []string
	lines = append(lines, "New task")
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	lines = append(lines, "Name:        "+f.name.View())
	lines = append(lines, "")
	lines = append(lines, "Description: ")
	lines = append(lines, f.description.View())
	lines = append(lines, "")
	lines = append(lines, "Start:       "+f.start.View())
	lines = append(lines, "Duration:    "+f.duration.View())

	priority := string(task.Priorities[f.priorityIdx])
	if f.field == formFieldPriority {
		lines = append(lines, "Priority:    "+selectedStyle.Render(fmt.Sprintf("< %s >", priority)))
	} else {
		lines = append(lines, fmt.Sprintf("Priority:      %s  ", priority))
	}

	if f.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, errStyle.Render(f.errMsg))
	}

	lines = append(lines, "")
	lines = append(lines, "Tab: next field • Enter: save • Esc: cancel")

	// Create a bordered box and center it
	content := strings.Join(lines, "\n")
	box := borderStyle.
		Padding(1).
		Background(lipgloss.Color("235")).
		Render(content)

	// Center the box on the screen
	centered := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)

	return centered
}

// confirmBox renders a centered yes/no prompt box.
func (m *Model) confirmBox(prompt string) string {
	width := 60
	height := 7

	content := lipgloss.NewStyle().
		Width(width - 4).
		Height(height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	// Center on screen
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// renderDeleteConfirmation renders the destructive-delete guard
func (m *Model) renderDeleteConfirmation() string {
	return m.confirmBox(fmt.Sprintf("Delete task '%s'? (y/n)", m.deleteTaskName))
}

// renderOverdueConfirmation warns that a new task is already past its
// end time.
func (m *Model) renderOverdueConfirmation() string {
	return m.confirmBox(fmt.Sprintf(
		"'%s' would already be overdue.\nAdd it anyway? (y/n)", m.pendingTask.Name))
}

// renderClearConfirmation renders the clear-all guard
func (m *Model) renderClearConfirmation() string {
	return m.confirmBox(fmt.Sprintf(
		"Delete ALL %d tasks?\nThis cannot be undone. (y/n)", m.store.Len()))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
