package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter entry id")
	if err != nil {
		return err
	}

	e, ok := a.journal.Get(id)
	if !ok {
		_, _ = printlnFn("No entry with id", id)
		return nil
	}

	_, _ = printlnFn(fmt.Sprintf("%s (%s)", e.Title, e.EffectiveMode()))
	_, _ = printlnFn("Created:", e.CreatedAt, " Updated:", e.UpdatedAt)
	if len(e.Tags) > 0 {
		_, _ = printlnFn("Tags: #" + strings.Join(e.Tags, " #"))
	}
	if e.AudioURL != "" {
		_, _ = printlnFn("Audio:", e.AudioURL)
	}
	if e.Content != "" {
		_, _ = printlnFn("")
		_, _ = printlnFn(e.Content)
	}
	if e.Emotion != nil {
		_, _ = printlnFn("")
		labels := make([]string, 0, len(e.Emotion))
		for label := range e.Emotion {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			_, _ = printlnFn(fmt.Sprintf("  %-10s %.2f", label, e.Emotion[label]))
		}
	}
	if e.Sentiment != nil {
		_, _ = printlnFn(fmt.Sprintf("Sentiment: %+.2f (%s)", *e.Sentiment, sentimentLabel(e.Sentiment)))
	}
	return nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, os.Stdout)
}
