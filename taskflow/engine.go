// Package taskflow implements the core of a single-user task manager:
// a file-backed task store and a stateless engine providing mutation,
// filtering, search and statistics over it. Presentation layers call
// into the engine and render whatever it returns; nothing in this
// package knows about rendering.
package taskflow

import (
	"strings"
	"time"

	"github.com/arthur-debert/taskflow/types"
)

// defaultDueDays is how far out a new task's due date is set.
const defaultDueDays = 7

// Engine derives views and aggregate statistics from the store's
// collection and mutates tasks through it. It holds no task state of its
// own: every operation works on the store's authoritative snapshot.
type Engine struct {
	store *Store
	now   func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over the given store.
func NewEngine(store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add validates and creates a new pending task with a due date seven days
// out, assigns the next free id, and persists.
func (e *Engine) Add(title, description string, priority types.Priority) (types.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !priority.IsValid() {
		return types.Task{}, &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}

	now := e.now()
	task := types.Task{
		ID:          e.store.NextID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      types.StatusPending,
		CreatedAt:   now,
		DueDate:     types.DateOf(now).AddDays(defaultDueDays),
	}

	if err := e.store.Append(task); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// Update rewrites the title, description and priority of an existing
// task. Id, status, creation time and due date are untouched.
func (e *Engine) Update(id int, title, description string, priority types.Priority) (types.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !priority.IsValid() {
		return types.Task{}, &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}

	task, err := e.store.Get(id)
	if err != nil {
		return types.Task{}, err
	}

	task.Title = title
	task.Description = strings.TrimSpace(description)
	task.Priority = priority

	if err := e.store.Replace(task); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// SetStatus marks a task completed or pending. Transitions toggle freely;
// a completed task can always be reopened.
func (e *Engine) SetStatus(id int, completed bool) (types.Task, error) {
	task, err := e.store.Get(id)
	if err != nil {
		return types.Task{}, err
	}

	if completed {
		task.Status = types.StatusCompleted
	} else {
		task.Status = types.StatusPending
	}

	if err := e.store.Replace(task); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// Delete removes a task from the collection.
func (e *Engine) Delete(id int) error {
	return e.store.Remove(id)
}

// Tasks returns the full collection in insertion order.
func (e *Engine) Tasks() []types.Task {
	return e.store.Tasks()
}

// List returns the view selected by kind, narrowed by the search term.
func (e *Engine) List(kind types.Filter, term string) []types.Task {
	return Apply(kind, term, e.store.Tasks(), e.Today())
}

// Stats aggregates completion counts over the full collection.
func (e *Engine) Stats() types.Stats {
	return ComputeStats(e.store.Tasks())
}

// Today returns the current calendar date per the engine's clock.
func (e *Engine) Today() types.Date {
	return types.DateOf(e.now())
}
