package taskflow

import "fmt"

// ValidationError reports a task field that was rejected before any
// mutation took place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against a task id that does not
// exist in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// StorageError reports a persistence failure. The in-memory collection is
// rolled back before one of these is returned, so the collection always
// matches the last successfully written file.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *StorageError) Unwrap() error {
	return e.Err
}
