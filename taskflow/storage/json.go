package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/arthur-debert/taskflow/types"
)

const (
	storeVersion = "1.0"

	lockTimeout  = 3 * time.Second
	lockInterval = 100 * time.Millisecond
)

// JSONStorage implements the Storage interface using a JSON file.
// A flock advisory lock on <file>.lock guards every load and save so
// external tooling pointed at the same file cannot interleave writes.
type JSONStorage struct {
	filePath string
	fileLock *flock.Flock
}

// NewJSONStorage creates a new JSON file storage for the given path.
func NewJSONStorage(filePath string) *JSONStorage {
	return &JSONStorage{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Path returns the backing file path.
func (s *JSONStorage) Path() string {
	return s.filePath
}

// Load reads the entire task collection from the file. A missing or empty
// file yields a fresh empty store; malformed content is an error for the
// caller to handle.
func (s *JSONStorage) Load() (*StoreData, error) {
	unlock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return emptyStore(), nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return emptyStore(), nil
	}

	var store StoreData
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if store.Tasks == nil {
		store.Tasks = []types.Task{}
	}

	return &store, nil
}

// Save writes the entire task collection atomically: marshal, write to a
// uniquely named temp file next to the target, then rename over it. A crash
// mid-write leaves the previous valid file untouched.
func (s *JSONStorage) Save(store *StoreData) error {
	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	store.Metadata.Version = storeVersion
	store.Metadata.UpdatedAt = time.Now()
	if store.Metadata.CreatedAt.IsZero() {
		store.Metadata.CreatedAt = store.Metadata.UpdatedAt
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpFile := fmt.Sprintf("%s.%s.tmp", s.filePath, uuid.NewString())
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Close releases resources and removes the lock file.
func (s *JSONStorage) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

// acquireLock takes the advisory file lock, returning an unlock func.
func (s *JSONStorage) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}

func emptyStore() *StoreData {
	now := time.Now()
	return &StoreData{
		Tasks: []types.Task{},
		Metadata: Metadata{
			Version:   storeVersion,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
