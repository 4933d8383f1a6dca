package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// TaskCollection is the signed-in user's task list mirrored from the remote
// store. Local state changes only after the matching remote call succeeded.
// Without an identity every store-facing operation is skipped.
type TaskCollection struct {
	store    TaskStore
	identity Identity
	notifier Notifier
	logger   logging.Logger

	mu    sync.Mutex
	tasks []task.Task
}

func NewTaskCollection(store TaskStore, identity Identity, notifier Notifier, logger logging.Logger) *TaskCollection {
	return &TaskCollection{
		store:    store,
		identity: identity,
		notifier: notifier,
		logger:   logger.With("module", "tasks"),
	}
}

// fail logs err, notifies the user and wraps it as a PersistenceError.
func (c *TaskCollection) fail(ctx context.Context, op string, err error) error {
	c.logger.Error(ctx, "task store call failed", "op", op, "error", err)
	c.notifier.Notify(LevelError, "Could not "+op)
	return &PersistenceError{Op: op, Err: err}
}

// List returns a copy of the tasks, newest first.
func (c *TaskCollection) List() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tasks)
}

// Load replaces the local list with the remote one. Without an identity the
// list is cleared.
func (c *TaskCollection) Load(ctx context.Context) error {
	owner, ok := c.identity.UserID()
	if !ok {
		c.mu.Lock()
		c.tasks = nil
		c.mu.Unlock()
		return nil
	}

	items, err := c.store.ListTasks(ctx, owner)
	if err != nil {
		return c.fail(ctx, "load tasks", err)
	}

	c.mu.Lock()
	c.tasks = slices.Clone(items)
	c.mu.Unlock()
	return nil
}

// Add persists a new task and prepends it. Drafts without a title are
// rejected before any remote call.
func (c *TaskCollection) Add(ctx context.Context, d task.Draft) (task.Task, error) {
	d = d.WithDefaults()
	if err := d.Validate(); err != nil {
		return task.Task{}, err
	}

	owner, ok := c.identity.UserID()
	if !ok {
		return task.Task{}, nil
	}

	created, err := c.store.CreateTask(ctx, owner, d)
	if err != nil {
		return task.Task{}, c.fail(ctx, "add task", err)
	}

	c.mu.Lock()
	c.tasks = append([]task.Task{created}, c.tasks...)
	c.mu.Unlock()

	c.notifier.Notify(LevelInfo, "Task added")
	return created, nil
}

// Update applies p remotely and then merges the same fields into the local
// copy. An id that is not held locally is a no-op merge. A remote update that
// matched no row is not an error.
func (c *TaskCollection) Update(ctx context.Context, id string, p task.Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	owner, ok := c.identity.UserID()
	if !ok {
		return nil
	}

	_, err := c.store.UpdateTask(ctx, owner, id, p)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		// zero rows matched (id, owner)
		c.logger.Debug(ctx, "update matched no task", "id", id)
	case err != nil:
		return c.fail(ctx, "update task", err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		p.Apply(&c.tasks[i])
	}
	c.mu.Unlock()
	return nil
}

// Delete removes the task remotely and then locally.
func (c *TaskCollection) Delete(ctx context.Context, id string) error {
	owner, ok := c.identity.UserID()
	if !ok {
		return nil
	}

	if err := c.store.DeleteTask(ctx, owner, id); err != nil {
		return c.fail(ctx, "delete task", err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.tasks = slices.Delete(c.tasks, i, i+1)
	}
	c.mu.Unlock()

	c.notifier.Notify(LevelInfo, "Task deleted")
	return nil
}

// ToggleComplete flips a task between completed and todo. Tasks not held
// locally are ignored.
func (c *TaskCollection) ToggleComplete(ctx context.Context, id string) error {
	t, ok := c.get(id)
	if !ok {
		return nil
	}
	return c.Update(ctx, id, task.Patch{Status: task.Ptr(t.Status.Toggled())})
}

func (c *TaskCollection) ToggleStar(ctx context.Context, id string) error {
	t, ok := c.get(id)
	if !ok {
		return nil
	}
	return c.Update(ctx, id, task.Patch{IsStarred: task.Ptr(!t.IsStarred)})
}

func (c *TaskCollection) Stats() task.Stats {
	return task.ComputeStats(c.List())
}

func (c *TaskCollection) Filter(f task.Filter) []task.Task {
	return f.Apply(c.List())
}

// Get returns the local copy of a task.
func (c *TaskCollection) Get(id string) (task.Task, bool) {
	return c.get(id)
}

func (c *TaskCollection) get(id string) (task.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.tasks[i], true
	}
	return task.Task{}, false
}

// indexOf must be called with mu held.
func (c *TaskCollection) indexOf(id string) int {
	return slices.IndexFunc(c.tasks, func(t task.Task) bool { return t.ID == id })
}
