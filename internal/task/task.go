// Package task holds the task model shared by the client and the server:
// the persisted Task, the Draft used to create one and the Patch used to
// update one in place.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/common"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Toggled returns the status a completion toggle moves to:
// completed goes back to todo, anything else becomes completed.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusTodo
	}
	return StatusCompleted
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work owned by a single user. ID is assigned by the
// store and never changes afterwards.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	DueDate     string    `json:"due_date,omitempty"`
	Category    string    `json:"category"`
	IsStarred   bool      `json:"is_starred"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft carries the fields of a task that does not exist yet.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"due_date,omitempty"`
	Category    string   `json:"category"`
	IsStarred   bool     `json:"is_starred"`
}

// WithDefaults fills in the status and priority a new task starts with.
func (d Draft) WithDefaults() Draft {
	if d.Status == "" {
		d.Status = StatusTodo
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	d.Title = strings.TrimSpace(d.Title)
	return d
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return validateFields(d.Priority, d.Status, d.DueDate)
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsStarred   *bool     `json:"is_starred,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.DueDate == nil && p.Category == nil && p.IsStarred == nil
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	var (
		prio   Priority
		status Status
		due    string
	)
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return fmt.Errorf("%w: unknown priority %q", common.ErrorValidation, *p.Priority)
		}
		prio = *p.Priority
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, *p.Status)
		}
		status = *p.Status
	}
	if p.DueDate != nil {
		due = *p.DueDate
	}
	if prio == "" {
		prio = PriorityMedium
	}
	if status == "" {
		status = StatusTodo
	}
	return validateFields(prio, status, due)
}

// Apply merges the set fields of p into t.
func (p Patch) Apply(t *Task) {
	if t == nil {
		return
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.IsStarred != nil {
		t.IsStarred = *p.IsStarred
	}
}

func validateFields(p Priority, s Status, due string) error {
	if !p.Valid() {
		return fmt.Errorf("%w: unknown priority %q", common.ErrorValidation, p)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, s)
	}
	if due != "" {
		if _, err := time.Parse(common.DateLayout, due); err != nil {
			return fmt.Errorf("%w: due date %q is not YYYY-MM-DD", common.ErrorValidation, due)
		}
	}
	return nil
}

// Ptr returns a pointer to v. Used to build patches.
func Ptr[T any](v T) *T {
	return &v
}
