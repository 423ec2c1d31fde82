package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"emojournal/internal/client/models"
)

// List reconciles with the backend first (remote wins when it has data),
// then prints the local collection.
func (a *App) List(ctx context.Context) error {
	a.journal.Reconcile(ctx)

	entries := a.journal.List()
	if len(entries) == 0 {
		_, _ = printlnFn("No entries yet. Try 'new' or 'voice'.")
		return nil
	}

	for _, e := range entries {
		_, _ = printlnFn(entryLine(e))
	}
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = printlnFn("Usage: search <query>")
		return nil
	}

	matches := a.journal.Search(strings.Join(args, " "))
	if len(matches) == 0 {
		_, _ = printlnFn("No matching entries.")
		return nil
	}
	for _, e := range matches {
		_, _ = printlnFn(entryLine(e))
	}
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	cloud := a.journal.TagCloud()
	if len(cloud) == 0 {
		_, _ = printlnFn("No tags yet.")
		return nil
	}

	tags := make([]string, 0, len(cloud))
	for t := range cloud {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if cloud[tags[i]] != cloud[tags[j]] {
			return cloud[tags[i]] > cloud[tags[j]]
		}
		return tags[i] < tags[j]
	})

	for _, t := range tags {
		_, _ = printlnFn(fmt.Sprintf("%-20s %d", t, cloud[t]))
	}
	return nil
}

func entryLine(e models.JournalEntry) string {
	marker := "T"
	if e.EffectiveMode() == models.ModeVoice {
		marker = "V"
	}
	line := fmt.Sprintf("[%s] %-36s  %-25s %s", marker, e.Id, truncate(e.Title, 25), feedbackLine(e))
	if len(e.Tags) > 0 {
		line += "  #" + strings.Join(e.Tags, " #")
	}
	return line
}

// feedbackLine summarizes the AI feedback: the dominant emotion plus a
// coarse sentiment label.
func feedbackLine(e models.JournalEntry) string {
	if e.Emotion == nil && e.Sentiment == nil {
		return "no AI feedback yet"
	}
	parts := make([]string, 0, 2)
	if label := dominantEmotion(e.Emotion); label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, sentimentLabel(e.Sentiment))
	return strings.Join(parts, ", ")
}

func dominantEmotion(scores models.EmotionScores) string {
	best := ""
	bestScore := -1.0
	for label, score := range scores {
		if score > bestScore || (score == bestScore && label < best) {
			best, bestScore = label, score
		}
	}
	return best
}

func sentimentLabel(score *float64) string {
	switch {
	case score == nil:
		return "no sentiment"
	case *score > 0.2:
		return "mostly positive"
	case *score < -0.2:
		return "mostly negative"
	default:
		return "mixed / neutral"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
