package types

import "time"

// dueSoonWindow is the number of days ahead (inclusive) that still counts
// as due soon.
const dueSoonWindow = 3

// Task is a unit of work. IDs are assigned by the store, are unique for
// the lifetime of the collection, and are never reused after deletion.
type Task struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Status      Status    `json:"status" yaml:"status"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	DueDate     Date      `json:"due_date" yaml:"due_date"`
}

// Completed reports whether the task has been marked done.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// UrgencyOn classifies the task's due date relative to today:
// past dates are overdue, today is due today, up to three days out is
// due soon, anything later is normal.
func (t Task) UrgencyOn(today Date) Urgency {
	days := today.DaysUntil(t.DueDate)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyDueToday
	case days <= dueSoonWindow:
		return UrgencyDueSoon
	default:
		return UrgencyNormal
	}
}
