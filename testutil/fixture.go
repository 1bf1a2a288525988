// Package testutil provides shared fixtures for taskflow tests.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/taskflow/taskflow"
)

// FixedTime is the reference instant used by fixture engines. It has no
// monotonic clock reading, so timestamps survive a JSON round trip
// exactly.
var FixedTime = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

// DiscardLogger returns a logger that drops everything, for tests that
// exercise fail-open paths without polluting output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStore creates a store over a fresh temp file, closed with the test.
func NewStore(t *testing.T) *taskflow.Store {
	t.Helper()
	return NewStoreAt(t, filepath.Join(t.TempDir(), "tasks.json"))
}

// NewStoreAt creates a store over the given file, closed with the test.
func NewStoreAt(t *testing.T, path string) *taskflow.Store {
	t.Helper()
	store := taskflow.Open(path, DiscardLogger())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewEngine creates an engine over a fresh store, with its clock pinned
// to FixedTime.
func NewEngine(t *testing.T) *taskflow.Engine {
	t.Helper()
	return NewEngineOver(NewStore(t))
}

// NewEngineOver wraps an existing store in an engine with the clock
// pinned to FixedTime.
func NewEngineOver(store *taskflow.Store) *taskflow.Engine {
	return taskflow.NewEngine(store, taskflow.WithClock(func() time.Time {
		return FixedTime
	}))
}
