package cli

import (
	"context"
)

func (a *App) Attach(ctx context.Context, taskID, path string) error {
	if _, ok := a.tasks.Get(taskID); !ok {
		printlnFn("Task not found:", taskID)
		return nil
	}
	id, err := a.attachments.Attach(ctx, taskID, path)
	if err != nil {
		return reported(err)
	}
	printlnFn("Attachment id:", id)
	return nil
}

func (a *App) Attachments(ctx context.Context, taskID string) error {
	items, err := a.attachments.List(ctx, taskID)
	if err != nil {
		return reported(err)
	}
	if len(items) == 0 {
		printlnFn("No attachments")
		return nil
	}
	for _, at := range items {
		printlnFn(formatAttachment(at))
	}
	return nil
}

// Download saves an uploaded attachment into dir. An existing file with the
// same name is kept and the new one gets a numbered name.
func (a *App) Download(ctx context.Context, attachmentID, dir string) error {
	path, err := a.attachments.Download(ctx, attachmentID, dir)
	if err != nil {
		return reported(err)
	}
	printlnFn("Saved to", path)
	return nil
}
