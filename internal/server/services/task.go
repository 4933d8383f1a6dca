package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// TaskService applies validation and ownership to task reads and writes.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func toTasks(rows []*models.Task) []task.Task {
	out := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Task)
	}
	return out
}

// List returns the user's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]task.Task, error) {
	rows, err := s.repomanager.Tasks(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return toTasks(rows), nil
}

// Create applies draft defaults, validates and inserts.
func (s *TaskService) Create(ctx context.Context, userID string, d task.Draft) (task.Task, error) {
	d = d.WithDefaults()
	if err := d.Validate(); err != nil {
		return task.Task{}, err
	}

	row, err := s.repomanager.Tasks(s.db).Create(ctx, userID, d)
	if err != nil {
		return task.Task{}, fmt.Errorf("error creating task: %w", err)
	}
	return row.Task, nil
}

// Update writes the set fields of p to the task (id, userID). Tasks of other
// users are indistinguishable from missing ones: both yield
// common.ErrorNotFound, since there is no row to return. Clients treat that
// as a no-op update.
func (s *TaskService) Update(ctx context.Context, userID, id string, p task.Patch) (task.Task, error) {
	if id == "" {
		return task.Task{}, fmt.Errorf("%w: task id is required", common.ErrorValidation)
	}
	if err := p.Validate(); err != nil {
		return task.Task{}, err
	}

	row, err := s.repomanager.Tasks(s.db).Update(ctx, id, userID, p)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return task.Task{}, err
		}
		return task.Task{}, fmt.Errorf("error updating task: %w", err)
	}
	return row.Task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: task id is required", common.ErrorValidation)
	}
	if err := s.repomanager.Tasks(s.db).Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
