package cli

import (
	"context"
	"fmt"
	"os"

	"emojournal/internal/client/models"
)

// New creates a text entry: title, multiline content and tags, analysed
// before saving.
func (a *App) New(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Write your entry", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	entry := models.JournalEntry{Title: title, Content: content}
	entry.SetTags(tags)

	saved, err := a.journal.Create(ctx, entry, nil)
	if err != nil {
		_, _ = printlnFn("Could not save entry:", err.Error())
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Saved entry %s (%s)", saved.Id, feedbackLine(saved)))
	return nil
}
