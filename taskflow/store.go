package taskflow

import (
	"log/slog"

	"github.com/arthur-debert/taskflow/taskflow/storage"
	"github.com/arthur-debert/taskflow/types"
)

// Store owns the task collection and its durable representation. All
// reads and writes go through a lock manager so a store can be shared
// across goroutines, and every mutation is persisted wholesale before it
// is considered committed.
type Store struct {
	backend storage.Storage
	locks   *storage.LockManager
	logger  *slog.Logger

	tasks []types.Task
	meta  storage.Metadata
}

// NewStore creates a store over the given backend and performs the
// initial load. Load failures are not fatal: a missing, unreadable or
// malformed file degrades to an empty collection, with a warning emitted
// through the logger. A nil logger falls back to slog.Default().
func NewStore(backend storage.Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		backend: backend,
		locks:   storage.NewLockManager(),
		logger:  logger,
		tasks:   []types.Task{},
	}

	data, err := backend.Load()
	if err != nil {
		logger.Warn("failed to load task data, starting with an empty collection", "error", err)
		return s
	}
	s.tasks = data.Tasks
	s.meta = data.Metadata
	return s
}

// Open is a convenience constructor over a JSON file backend.
func Open(filePath string, logger *slog.Logger) *Store {
	return NewStore(storage.NewJSONStorage(filePath), logger)
}

// Tasks returns a snapshot of the collection in insertion order.
func (s *Store) Tasks() []types.Task {
	var snapshot []types.Task
	_ = s.locks.Execute(storage.ReadOperation, func() error {
		snapshot = make([]types.Task, len(s.tasks))
		copy(snapshot, s.tasks)
		return nil
	})
	return snapshot
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (types.Task, error) {
	var task types.Task
	err := s.locks.Execute(storage.ReadOperation, func() error {
		for _, t := range s.tasks {
			if t.ID == id {
				task = t
				return nil
			}
		}
		return &NotFoundError{ID: id}
	})
	return task, err
}

// NextID returns 1 + the highest id in the collection, or 1 when empty.
// Being count-independent, it never reuses an id after a deletion.
func (s *Store) NextID() int {
	next := 1
	_ = s.locks.Execute(storage.ReadOperation, func() error {
		for _, t := range s.tasks {
			if t.ID >= next {
				next = t.ID + 1
			}
		}
		return nil
	})
	return next
}

// Append adds a task to the end of the collection and persists.
func (s *Store) Append(task types.Task) error {
	return s.locks.Execute(storage.WriteOperation, func() error {
		s.tasks = append(s.tasks, task)
		if err := s.save(); err != nil {
			s.tasks = s.tasks[:len(s.tasks)-1]
			return err
		}
		return nil
	})
}

// Replace swaps the stored task with the same id for the given one,
// preserving collection order, and persists.
func (s *Store) Replace(task types.Task) error {
	return s.locks.Execute(storage.WriteOperation, func() error {
		for i, t := range s.tasks {
			if t.ID == task.ID {
				s.tasks[i] = task
				if err := s.save(); err != nil {
					s.tasks[i] = t
					return err
				}
				return nil
			}
		}
		return &NotFoundError{ID: task.ID}
	})
}

// Remove deletes the task with the given id and persists.
func (s *Store) Remove(id int) error {
	return s.locks.Execute(storage.WriteOperation, func() error {
		for i, t := range s.tasks {
			if t.ID == id {
				removed := t
				s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
				if err := s.save(); err != nil {
					s.tasks = append(s.tasks[:i], append([]types.Task{removed}, s.tasks[i:]...)...)
					return err
				}
				return nil
			}
		}
		return &NotFoundError{ID: id}
	})
}

// Close releases the backend's resources.
func (s *Store) Close() error {
	return s.backend.Close()
}

// save writes the full collection through the backend. Callers must hold
// the write lock.
func (s *Store) save() error {
	data := &storage.StoreData{
		Tasks:    s.tasks,
		Metadata: s.meta,
	}
	if err := s.backend.Save(data); err != nil {
		s.logger.Error("failed to save task data", "error", err)
		return &StorageError{Op: "save", Err: err}
	}
	s.meta = data.Metadata
	return nil
}
