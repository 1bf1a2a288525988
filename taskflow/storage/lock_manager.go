package storage

import (
	"sync"
)

// OperationType defines whether an operation is read or write.
// Read operations may proceed concurrently; write operations are
// exclusive.
type OperationType int

const (
	// ReadOperation indicates an operation that only reads data.
	ReadOperation OperationType = iota

	// WriteOperation indicates an operation that modifies data.
	WriteOperation
)

// LockManager provides centralized lock management for thread-safe store
// operations. Centralizing the locking strategy keeps every store method
// on the same read/write discipline and avoids lock/unlock/relock
// patterns.
type LockManager struct {
	mu *sync.RWMutex
}

// NewLockManager creates a new lock manager instance.
func NewLockManager() *LockManager {
	return &LockManager{
		mu: &sync.RWMutex{},
	}
}

// Execute runs a function with the appropriate lock for the operation
// type. The lock is released via defer, so it is cleaned up even if the
// function panics.
func (lm *LockManager) Execute(opType OperationType, fn func() error) error {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
