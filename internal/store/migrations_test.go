package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pdxmph/planner-tui/internal/task"
)

func TestPriorityMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	if err := Initialize(path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// Plant a pre-migration snapshot with numeric priorities.
	legacy := `[
  {"id": 1, "name": "old high", "startTime": "09:00", "duration": 30, "priority": 3, "completed": false},
  {"id": 2, "name": "old medium", "startTime": "10:00", "duration": 30, "priority": 2, "completed": false},
  {"id": 3, "name": "old low", "startTime": "11:00", "duration": 30, "priority": 1, "completed": true},
  {"id": 4, "name": "already named", "startTime": "12:00", "duration": 30, "priority": "high", "completed": false}
]`
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO snapshots (key, value) VALUES (?, ?)`, snapshotKey, legacy); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	s, err := Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening legacy database: %v", err)
	}
	defer s.Close()

	want := map[int64]task.Priority{
		1: task.PriorityHigh,
		2: task.PriorityMedium,
		3: task.PriorityLow,
		4: task.PriorityHigh,
	}
	tasks := s.Tasks()
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for _, tk := range tasks {
		if tk.Priority != want[tk.ID] {
			t.Errorf("task %d: priority %q, want %q", tk.ID, tk.Priority, want[tk.ID])
		}
	}
}
