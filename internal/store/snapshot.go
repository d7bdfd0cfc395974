package store

import (
	"encoding/json"
	"fmt"

	"github.com/pdxmph/planner-tui/internal/task"
)

// snapshotKey names the single entry every backend stores the
// serialized collection under.
const snapshotKey = "tasks"

func encodeSnapshot(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return tasks, nil
}
