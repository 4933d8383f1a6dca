package task

import "strings"

// Stats are the headline counters shown above the task list.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Todo       int
	// Active counts every task that is not completed.
	Active int
}

func ComputeStats(tasks []Task) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case StatusCompleted:
			s.Completed++
		case StatusInProgress:
			s.InProgress++
		case StatusTodo:
			s.Todo++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

// Filter narrows a task list. Zero-valued fields match everything.
type Filter struct {
	Status      Status
	Priority    Priority
	Category    string
	StarredOnly bool
	DueDate     string
}

func (f Filter) Match(t Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Category != "" && !strings.EqualFold(strings.TrimSpace(f.Category), strings.TrimSpace(t.Category)) {
		return false
	}
	if f.StarredOnly && !t.IsStarred {
		return false
	}
	if f.DueDate != "" && t.DueDate != f.DueDate {
		return false
	}
	return true
}

// Apply returns the tasks matching f, in their original order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
