package cli

import (
	"context"
	"fmt"
	"sort"
)

// Insights prints an aggregate of the local journal: the average emotion
// mix over analysed entries plus entry and tag counts.
func (a *App) Insights(ctx context.Context) error {
	ins := a.journal.ComputeInsights()

	if ins.TotalEntries == 0 {
		_, _ = printlnFn("No entries yet. Try 'new' or 'voice'.")
		return nil
	}

	_, _ = printlnFn("Total entries:   ", ins.TotalEntries)
	_, _ = printlnFn("Analysed entries:", ins.Analysed)
	_, _ = printlnFn("Unique tags:     ", ins.UniqueTags)

	if ins.Analysed == 0 {
		return nil
	}

	_, _ = printlnFn("")
	_, _ = printlnFn("Average emotion mix:")
	labels := make([]string, 0, len(ins.AverageEmotion))
	for label := range ins.AverageEmotion {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		_, _ = printlnFn(fmt.Sprintf("  %-10s %.2f", label, ins.AverageEmotion[label]))
	}
	return nil
}
