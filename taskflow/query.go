package taskflow

import (
	"strings"

	"github.com/arthur-debert/taskflow/types"
)

// Filter returns the subsequence of tasks selected by kind, in input
// order. It is a pure projection: the input is never mutated. FilterAll
// copies, so the result is always safe to modify.
func Filter(kind types.Filter, tasks []types.Task, today types.Date) []types.Task {
	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		switch kind {
		case types.FilterAll:
			result = append(result, t)
		case types.FilterPending:
			if t.Status == types.StatusPending {
				result = append(result, t)
			}
		case types.FilterCompleted:
			if t.Status == types.StatusCompleted {
				result = append(result, t)
			}
		case types.FilterHighPriority:
			if t.Priority == types.PriorityHigh {
				result = append(result, t)
			}
		case types.FilterDueToday:
			if t.DueDate == today {
				result = append(result, t)
			}
		}
	}
	return result
}

// Search returns the tasks whose title or description contains term,
// case-insensitively. An empty term is the identity transform: the input
// is returned unchanged.
func Search(term string, tasks []types.Task) []types.Task {
	if term == "" {
		return tasks
	}

	termLower := strings.ToLower(term)
	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), termLower) ||
			strings.Contains(strings.ToLower(t.Description), termLower) {
			result = append(result, t)
		}
	}
	return result
}

// Apply filters first, then searches within the filtered result. The two
// narrow progressively: the search term only sees tasks the filter kept.
func Apply(kind types.Filter, term string, tasks []types.Task, today types.Date) []types.Task {
	return Search(term, Filter(kind, tasks, today))
}

// ComputeStats aggregates completion counts. Pending is derived as
// total minus completed, never tracked independently.
func ComputeStats(tasks []types.Task) types.Stats {
	completed := 0
	for _, t := range tasks {
		if t.Status == types.StatusCompleted {
			completed++
		}
	}
	return types.Stats{
		Total:     len(tasks),
		Completed: completed,
		Pending:   len(tasks) - completed,
	}
}
