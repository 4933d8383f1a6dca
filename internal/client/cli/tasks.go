package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// Reload refetches the task list and today's balance record.
func (a *App) Reload(ctx context.Context) error {
	return errors.Join(
		reported(a.tasks.Load(ctx)),
		reported(a.balance.Load(ctx)),
	)
}

func (a *App) List(ctx context.Context) error {
	renderTasks(a.tasks.List())
	return nil
}

// Filter prints the tasks matching key=value arguments, see parseFilter.
func (a *App) Filter(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return err
	}
	renderTasks(a.tasks.Filter(f))
	return nil
}

// Add prompts for the task fields and creates the task.
func (a *App) Add(ctx context.Context) error {
	var d task.Draft
	var err error

	if d.Title, err = GetSimpleText(a.reader, "Enter title", a.out); err != nil {
		return err
	}
	if d.Description, err = GetMultiline(a.reader, "Enter description", a.out); err != nil {
		return err
	}

	priority, _, err := GetOptionalText(a.reader, "Priority (low, medium, high)", string(task.PriorityMedium), a.out)
	if err != nil {
		return err
	}
	d.Priority = task.Priority(strings.ToLower(priority))

	if d.DueDate, err = GetSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for none)", a.out); err != nil {
		return err
	}
	if d.Category, err = GetSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}

	starred, err := GetSimpleText(a.reader, "Star it? (y/N)", a.out)
	if err != nil {
		return err
	}
	d.IsStarred = isYes(starred)

	t, err := a.tasks.Add(ctx, d)
	if err != nil {
		return reported(err)
	}
	if t.ID != "" {
		printlnFn(formatTask(t))
	}
	return nil
}

// Edit prompts for every field showing the current value; only the fields
// the user changed are sent.
func (a *App) Edit(ctx context.Context, id string) error {
	t, ok := a.tasks.Get(id)
	if !ok {
		printlnFn("Task not found:", id)
		return nil
	}

	var p task.Patch

	text := func(prompt, current string, dst **string) error {
		v, changed, err := GetOptionalText(a.reader, prompt, current, a.out)
		if err != nil {
			return err
		}
		if changed {
			*dst = task.Ptr(v)
		}
		return nil
	}

	if err := text("Title", t.Title, &p.Title); err != nil {
		return err
	}
	if err := text("Description", t.Description, &p.Description); err != nil {
		return err
	}

	var priority, status *string
	if err := text("Priority (low, medium, high)", string(t.Priority), &priority); err != nil {
		return err
	}
	if priority != nil {
		p.Priority = task.Ptr(task.Priority(strings.ToLower(*priority)))
	}
	if err := text("Status (todo, in-progress, completed)", string(t.Status), &status); err != nil {
		return err
	}
	if status != nil {
		p.Status = task.Ptr(task.Status(strings.ToLower(*status)))
	}

	if err := text("Due date (YYYY-MM-DD, '-' to clear)", t.DueDate, &p.DueDate); err != nil {
		return err
	}
	if p.DueDate != nil && *p.DueDate == "-" {
		p.DueDate = task.Ptr("")
	}
	if err := text("Category", t.Category, &p.Category); err != nil {
		return err
	}

	if p.IsEmpty() {
		printlnFn("Nothing to change")
		return nil
	}

	if err := a.tasks.Update(ctx, id, p); err != nil {
		return reported(err)
	}
	printlnFn("Task updated")
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	return reported(a.tasks.Delete(ctx, id))
}

// Done toggles completion: completed tasks go back to todo.
func (a *App) Done(ctx context.Context, id string) error {
	if _, ok := a.tasks.Get(id); !ok {
		printlnFn("Task not found:", id)
		return nil
	}
	if err := a.tasks.ToggleComplete(ctx, id); err != nil {
		return reported(err)
	}
	t, _ := a.tasks.Get(id)
	printlnFn(formatTask(t))
	return nil
}

func (a *App) Star(ctx context.Context, id string) error {
	if _, ok := a.tasks.Get(id); !ok {
		printlnFn("Task not found:", id)
		return nil
	}
	if err := a.tasks.ToggleStar(ctx, id); err != nil {
		return reported(err)
	}
	t, _ := a.tasks.Get(id)
	printlnFn(formatTask(t))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s := a.tasks.Stats()
	printlnFn(fmt.Sprintf("Total: %d  Active: %d  Todo: %d  In progress: %d  Completed: %d",
		s.Total, s.Active, s.Todo, s.InProgress, s.Completed))
	return nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
