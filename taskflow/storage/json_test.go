package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/arthur-debert/taskflow/taskflow/storage"
	"github.com/arthur-debert/taskflow/types"
)

func newStorage(t *testing.T) (*storage.JSONStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := storage.NewJSONStorage(path)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func fixtureTasks() []types.Task {
	created := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	return []types.Task{
		{
			ID:          1,
			Title:       "Buy milk",
			Description: "two liters",
			Priority:    types.PriorityLow,
			Status:      types.StatusPending,
			CreatedAt:   created,
			DueDate:     types.NewDate(2026, time.March, 17),
		},
		{
			ID:        2,
			Title:     "Ship release",
			Priority:  types.PriorityHigh,
			Status:    types.StatusCompleted,
			CreatedAt: created,
			DueDate:   types.NewDate(2026, time.March, 17),
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, _ := newStorage(t)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Tasks) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(data.Tasks))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	s, path := newStorage(t)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	data, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Tasks) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(data.Tasks))
	}
}

func TestLoadMalformedFile(t *testing.T) {
	s, path := newStorage(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(); err == nil {
		t.Error("expected parse error for malformed file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newStorage(t)
	tasks := fixtureTasks()

	if err := s.Save(&storage.StoreData{Tasks: tasks}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	data, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if diff := cmp.Diff(tasks, data.Tasks); diff != "" {
		t.Errorf("round trip changed tasks (-want +got):\n%s", diff)
	}
	if data.Metadata.Version == "" {
		t.Error("expected metadata version to be set")
	}
	if data.Metadata.UpdatedAt.IsZero() {
		t.Error("expected metadata updated_at to be set")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s, path := newStorage(t)

	for i := 0; i < 3; i++ {
		if err := s.Save(&storage.StoreData{Tasks: fixtureTasks()}); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
}

func TestCloseRemovesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := storage.NewJSONStorage(path)

	if err := s.Save(&storage.StoreData{Tasks: fixtureTasks()}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Error("expected lock file to be removed on close")
	}
}

func TestWireFormat(t *testing.T) {
	s, path := newStorage(t)

	if err := s.Save(&storage.StoreData{Tasks: fixtureTasks()}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)

	// Dates are plain YYYY-MM-DD strings, timestamps RFC 3339.
	for _, want := range []string{
		`"due_date": "2026-03-17"`,
		`"created_at": "2026-03-10T09:30:00Z"`,
		`"priority": "low"`,
		`"status": "completed"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected file to contain %s\nfile:\n%s", want, content)
		}
	}
}
