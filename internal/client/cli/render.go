package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

var statusMarks = map[task.Status]string{
	task.StatusTodo:       "[ ]",
	task.StatusInProgress: "[~]",
	task.StatusCompleted:  "[x]",
}

// formatTask renders one task as a single line:
//
//	[x] * <id> Title (high) due 2025-01-02 #work
func formatTask(t task.Task) string {
	var b strings.Builder

	mark, ok := statusMarks[t.Status]
	if !ok {
		mark = "[?]"
	}
	b.WriteString(mark)
	if t.IsStarred {
		b.WriteString(" *")
	} else {
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, " %s %s (%s)", t.ID, t.Title, t.Priority)
	if t.DueDate != "" {
		fmt.Fprintf(&b, " due %s", t.DueDate)
	}
	if t.Category != "" {
		fmt.Fprintf(&b, " #%s", t.Category)
	}
	return b.String()
}

func renderTasks(tasks []task.Task) {
	if len(tasks) == 0 {
		printlnFn("No tasks")
		return
	}
	for _, t := range tasks {
		printlnFn(formatTask(t))
	}
}

// parseFilter builds a task filter from arguments such as
// "status=todo priority=high category=work due=2025-01-02 starred".
func parseFilter(args []string) (task.Filter, error) {
	var f task.Filter
	for _, arg := range args {
		if arg == "starred" {
			f.StarredOnly = true
			continue
		}
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return task.Filter{}, fmt.Errorf("%w: bad filter %q", common.ErrorValidation, arg)
		}
		switch strings.ToLower(key) {
		case "status":
			f.Status = task.Status(strings.ToLower(value))
			if !f.Status.Valid() {
				return task.Filter{}, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, value)
			}
		case "priority":
			f.Priority = task.Priority(strings.ToLower(value))
			if !f.Priority.Valid() {
				return task.Filter{}, fmt.Errorf("%w: unknown priority %q", common.ErrorValidation, value)
			}
		case "category":
			f.Category = value
		case "due":
			if _, err := time.Parse(common.DateLayout, value); err != nil {
				return task.Filter{}, fmt.Errorf("%w: due date must be YYYY-MM-DD", common.ErrorValidation)
			}
			f.DueDate = value
		default:
			return task.Filter{}, fmt.Errorf("%w: unknown filter %q", common.ErrorValidation, key)
		}
	}
	return f, nil
}

func renderBalance(date string, shares []balance.Share, score int) {
	printlnFn("Balance for", date)
	var total float64
	for _, s := range shares {
		printlnFn(fmt.Sprintf("  %-9s %5.1fh %5.1f%% (ideal %.0f%%)", s.Category, s.Hours, s.Percentage, s.Ideal))
		total += s.Hours
	}
	printlnFn(fmt.Sprintf("  total     %5.1fh  score %d/100", total, score))
}

func formatAttachment(at api.Attachment) string {
	return fmt.Sprintf("%s %s (%s) %s", at.ID, at.FileName, at.Status, at.CreatedAt.Format(time.DateTime))
}
