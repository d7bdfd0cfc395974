package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdxmph/planner-tui/internal/task"
)

// fileBackend keeps the snapshot in a plain JSON file. Handy for
// version-controlled task lists and for machines without sqlite.
type fileBackend struct {
	path string
}

func openFile(path string) (Backend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	return &fileBackend{path: path}, nil
}

func (b *fileBackend) Name() string {
	return "file"
}

func (b *fileBackend) Close() error {
	return nil
}

func (b *fileBackend) Load() ([]task.Task, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	return decodeSnapshot(data)
}

func (b *fileBackend) Save(tasks []task.Task) error {
	data, err := encodeSnapshot(tasks)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never clobbers the
	// previous snapshot.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replacing snapshot file: %w", err)
	}
	return nil
}

func init() {
	Register("file", openFile)
}
