package store

import "github.com/pdxmph/planner-tui/internal/task"

// memoryBackend holds the snapshot in memory only. Used in tests and
// for throwaway sessions; nothing survives Close.
type memoryBackend struct {
	snapshot []task.Task
}

func openMemory(string) (Backend, error) {
	return &memoryBackend{}, nil
}

func (b *memoryBackend) Name() string {
	return "memory"
}

func (b *memoryBackend) Close() error {
	return nil
}

func (b *memoryBackend) Load() ([]task.Task, error) {
	tasks := make([]task.Task, len(b.snapshot))
	copy(tasks, b.snapshot)
	return tasks, nil
}

func (b *memoryBackend) Save(tasks []task.Task) error {
	b.snapshot = make([]task.Task, len(tasks))
	copy(b.snapshot, tasks)
	return nil
}

func init() {
	Register("memory", openMemory)
}
