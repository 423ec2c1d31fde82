package cli

import (
	"context"
	"strings"
)

// Delete removes an entry remotely and locally.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter entry id")
	if err != nil {
		return err
	}

	if _, ok := a.journal.Get(id); !ok {
		_, _ = printlnFn("No entry with id", id)
		return nil
	}

	if err := a.journal.Delete(ctx, id); err != nil {
		_, _ = printlnFn("Could not delete entry:", err.Error())
		return err
	}

	_, _ = printlnFn("Deleted entry", id)
	return nil
}

// Tag replaces an entry's tag list. Tags live on this device only.
func (a *App) Tag(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = printlnFn("Usage: tag <id> [tags...]")
		return nil
	}

	id := args[0]
	tags := args[1:]

	entry, err := a.journal.SetTags(ctx, id, tags)
	if err != nil {
		_, _ = printlnFn("Could not tag entry:", err.Error())
		return err
	}

	if len(entry.Tags) == 0 {
		_, _ = printlnFn("Cleared tags on entry", id)
		return nil
	}
	_, _ = printlnFn("Tagged entry " + id + ": #" + strings.Join(entry.Tags, " #"))
	return nil
}
