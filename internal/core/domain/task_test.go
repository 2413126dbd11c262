package domain

import "testing"

func TestTaskPriority_IsValid(t *testing.T) {
	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.IsValid() {
			t.Errorf("%s should be valid", p)
		}
	}
	for _, p := range []TaskPriority{"", "medium", "Critical"} {
		if p.IsValid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestTaskStatus_IsValid(t *testing.T) {
	valid := []TaskStatus{
		StatusPending, StatusInProgress, StatusCompleted,
		StatusUrgent, StatusPlanned, StatusScheduled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []TaskStatus{"", "pending", "Done", "InProgress"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
