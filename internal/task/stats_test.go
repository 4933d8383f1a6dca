package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "a", Status: StatusTodo, Priority: PriorityHigh, Category: "Work", IsStarred: true, DueDate: "2026-10-16"},
		{ID: "2", Title: "b", Status: StatusInProgress, Priority: PriorityLow, Category: "home"},
		{ID: "3", Title: "c", Status: StatusCompleted, Priority: PriorityHigh, Category: "work"},
		{ID: "4", Title: "d", Status: StatusTodo, Priority: PriorityMedium, IsStarred: true},
	}
}

func TestComputeStats(t *testing.T) {
	got := ComputeStats(sampleTasks())
	assert.Equal(t, Stats{Total: 4, Completed: 1, InProgress: 1, Todo: 2, Active: 3}, got)

	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter", Filter{}, []string{"1", "2", "3", "4"}},
		{"status", Filter{Status: StatusTodo}, []string{"1", "4"}},
		{"priority", Filter{Priority: PriorityHigh}, []string{"1", "3"}},
		{"category is case-insensitive", Filter{Category: "WORK"}, []string{"1", "3"}},
		{"starred", Filter{StarredOnly: true}, []string{"1", "4"}},
		{"due date", Filter{DueDate: "2026-10-16"}, []string{"1"}},
		{"combined", Filter{Priority: PriorityHigh, Status: StatusCompleted}, []string{"3"}},
		{"nothing", Filter{Category: "garden"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(tasks)))
		})
	}
}
