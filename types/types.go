// Package types defines the core data model for taskflow: the Task entity
// and the enumerated value types that constrain it.
package types

import "fmt"

// Priority is the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string to a Priority, rejecting anything
// outside the enumerated domain.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q (valid: low, medium, high)", s)
}

// IsValid reports whether p is one of the enumerated priorities.
func (p Priority) IsValid() bool {
	_, err := ParsePriority(string(p))
	return err == nil
}

// Status is the completion state of a task. The two states toggle freely;
// a completed task can always be reopened.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q (valid: pending, completed)", s)
}

// Filter selects a view of the task collection.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterPending      Filter = "pending"
	FilterCompleted    Filter = "completed"
	FilterHighPriority Filter = "high"
	FilterDueToday     Filter = "today"
)

// ParseFilter converts a string to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterPending, FilterCompleted, FilterHighPriority, FilterDueToday:
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid filter %q (valid: all, pending, completed, high, today)", s)
}

// Urgency classifies a task's due date relative to a reference date.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyDueSoon  Urgency = "due_soon"
	UrgencyNormal   Urgency = "normal"
)

// Stats aggregates completion counts over a task collection.
// Pending is always Total - Completed.
type Stats struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Pending   int `json:"pending" yaml:"pending"`
}
