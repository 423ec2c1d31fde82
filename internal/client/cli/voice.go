package cli

import (
	"context"
	"fmt"
	"os"

	"emojournal/internal/client/models"
)

// Voice creates a voice entry from a recorded audio file on disk. An
// optional transcript can be typed alongside it.
func (a *App) Voice(ctx context.Context, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		path, err = GetSimpleText(a.reader, "Path to the audio file", os.Stdout)
		if err != nil {
			return err
		}
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		_, _ = printlnFn("Could not read audio file:", err.Error())
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Transcript or notes (optional)", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	entry := models.JournalEntry{Title: title, Content: content, AudioURL: path}
	entry.SetTags(tags)

	saved, err := a.journal.Create(ctx, entry, audio)
	if err != nil {
		_, _ = printlnFn("Could not save entry:", err.Error())
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Saved voice entry %s (%s)", saved.Id, feedbackLine(saved)))
	return nil
}
