package store

import (
	"fmt"
	"time"

	"github.com/pdxmph/planner-tui/internal/task"
)

// Store owns the in-memory task collection. Every mutation is a
// read-modify-write cycle: the working copy is changed, the full
// snapshot is written through the backend, and only then does the
// change become visible to readers. On a failed write the previous
// collection stays in place.
type Store struct {
	backend Backend
	tasks   []task.Task
}

// Open creates the named backend at path and seeds the store from its
// last snapshot.
func Open(backendName, path string) (*Store, error) {
	backend, err := CreateBackend(backendName, path)
	if err != nil {
		return nil, fmt.Errorf("creating backend %s: %w", backendName, err)
	}

	s, err := NewWithBackend(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return s, nil
}

// NewWithBackend seeds a store from an already-open backend.
func NewWithBackend(backend Backend) (*Store, error) {
	tasks, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return &Store{backend: backend, tasks: tasks}, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Backend returns the name of the backend in use.
func (s *Store) Backend() string {
	return s.backend.Name()
}

// Tasks returns a copy of the current collection in store order.
func (s *Store) Tasks() []task.Task {
	tasks := make([]task.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Append validates t, assigns its ID from the creation instant and
// persists the grown collection. The stored record is returned.
func (s *Store) Append(t task.Task) (task.Task, error) {
	if t.Name == "" {
		return task.Task{}, fmt.Errorf("task name cannot be empty")
	}
	if _, _, err := task.ParseClock(t.StartTime); err != nil {
		return task.Task{}, fmt.Errorf("invalid start time: %w", err)
	}
	if t.Duration <= 0 {
		return task.Task{}, fmt.Errorf("duration must be a positive number of minutes")
	}
	if !t.Priority.Valid() {
		return task.Task{}, fmt.Errorf("invalid priority %q", t.Priority)
	}

	t.ID = s.nextID()
	t.Completed = false

	next := append(s.Tasks(), t)
	if err := s.backend.Save(next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next
	return t, nil
}

// Remove deletes the task with the given id. Removing an unknown id
// is a no-op.
func (s *Store) Remove(id int64) error {
	next := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(s.tasks) {
		return nil
	}
	if err := s.backend.Save(next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

// MarkCompleted flips the task's completed flag. The flag is one-way
// and the call is idempotent; marking an already-completed or unknown
// id changes nothing.
func (s *Store) MarkCompleted(id int64) error {
	next := s.Tasks()
	changed := false
	for i := range next {
		if next[i].ID == id && !next[i].Completed {
			next[i].Completed = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.backend.Save(next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

// Clear deletes every task and persists the empty snapshot.
func (s *Store) Clear() error {
	if err := s.backend.Save([]task.Task{}); err != nil {
		return err
	}
	s.tasks = []task.Task{}
	return nil
}

// nextID derives a new unique ID from the wall clock. Two appends in
// the same millisecond bump past the current maximum instead of
// colliding.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}
