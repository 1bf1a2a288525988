// Package storage provides the persistence layer for taskflow.
// It defines the interface for durable task collections and provides a
// JSON file implementation.
package storage

import (
	"time"

	"github.com/arthur-debert/taskflow/types"
)

// StoreData represents the complete data structure stored in the backend.
type StoreData struct {
	Tasks    []types.Task `json:"tasks"`
	Metadata Metadata     `json:"metadata"`
}

// Metadata contains storage metadata.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage defines the low-level interface for batch persistence.
// The collection is read and written wholesale, which matches the JSON
// file backend's natural behavior: no incremental or append log exists.
type Storage interface {
	// Load reads the entire store data from the backend.
	Load() (*StoreData, error)

	// Save writes the entire store data to the backend.
	Save(data *StoreData) error

	// Close releases any resources held by the storage.
	Close() error
}
