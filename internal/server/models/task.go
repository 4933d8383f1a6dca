// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// Task is a stored task row: the shared task fields plus ownership and
// bookkeeping columns that never leave the server.
type Task struct {
	task.Task
	UserID    string
	UpdatedAt time.Time
}
