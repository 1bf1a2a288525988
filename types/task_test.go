package types

import (
	"testing"
	"time"
)

func TestUrgencyOn(t *testing.T) {
	today := NewDate(2026, time.March, 10)

	cases := []struct {
		name string
		due  Date
		want Urgency
	}{
		{"one day past is overdue", today.AddDays(-1), UrgencyOverdue},
		{"far past is overdue", today.AddDays(-30), UrgencyOverdue},
		{"today is due today", today, UrgencyDueToday},
		{"tomorrow is due soon", today.AddDays(1), UrgencyDueSoon},
		{"three days out is due soon", today.AddDays(3), UrgencyDueSoon},
		{"four days out is normal", today.AddDays(4), UrgencyNormal},
		{"default week out is normal", today.AddDays(7), UrgencyNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{Title: "x", DueDate: tc.due}
			if got := task.UrgencyOn(today); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high"} {
		p, err := ParsePriority(valid)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", valid, err)
		}
		if string(p) != valid {
			t.Errorf("expected %q, got %q", valid, p)
		}
	}
	for _, invalid := range []string{"", "urgent", "High", "LOW"} {
		if _, err := ParsePriority(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
}

func TestParseFilter(t *testing.T) {
	for _, valid := range []string{"all", "pending", "completed", "high", "today"} {
		if _, err := ParseFilter(valid); err != nil {
			t.Errorf("unexpected error for %q: %v", valid, err)
		}
	}
	if _, err := ParseFilter("overdue"); err == nil {
		t.Error("expected error for unknown filter")
	}
}
