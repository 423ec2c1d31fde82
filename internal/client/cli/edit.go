package cli

import (
	"context"
	"fmt"
	"os"
)

// Edit rewrites the title and content of an existing entry. The entry is
// re-analysed and saved through the backend; voice entries keep their
// recorded audio on the server, only the transcript-side fields change.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter entry id")
	if err != nil {
		return err
	}

	entry, ok := a.journal.Get(id)
	if !ok {
		_, _ = printlnFn("No entry with id", id)
		return nil
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter new title (was %q)", entry.Title), os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Rewrite your entry", os.Stdout)
	if err != nil {
		return err
	}

	if title != "" {
		entry.Title = title
	}
	if content != "" {
		entry.Content = content
	}

	saved, err := a.journal.Update(ctx, entry, nil)
	if err != nil {
		_, _ = printlnFn("Could not update entry:", err.Error())
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Updated entry %s (%s)", saved.Id, feedbackLine(saved)))
	return nil
}
