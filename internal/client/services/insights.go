package services

import (
	"encoding/json"

	"emojournal/internal/client/models"
)

// canonicalLabels is the six-label set of the text emotion model; the
// aggregate is computed over these regardless of any extra labels a speech
// analysis may have attached to individual entries.
var canonicalLabels = []string{"joy", "sadness", "anger", "fear", "surprise", "neutral"}

// Insights is an aggregate view over the local collection.
type Insights struct {
	// AverageEmotion is the per-label mean across all analysed entries.
	AverageEmotion models.EmotionScores

	// Analysed counts the entries that carry emotion feedback.
	Analysed int

	TotalEntries int
	UniqueTags   int
}

// ComputeInsights aggregates the local store: the mean emotion mix over all
// analysed entries plus entry and tag counts. Entries without feedback are
// skipped by the average but still counted in TotalEntries; a label absent
// from an entry contributes zero.
func (s *JournalService) ComputeInsights() Insights {
	entries := s.store.All()

	acc := make(models.EmotionScores, len(canonicalLabels))
	for _, label := range canonicalLabels {
		acc[label] = 0
	}

	analysed := 0
	for _, e := range entries {
		if e.Emotion == nil {
			continue
		}
		analysed++
		for _, label := range canonicalLabels {
			acc[label] += e.Emotion[label]
		}
	}
	if analysed > 0 {
		for _, label := range canonicalLabels {
			acc[label] /= float64(analysed)
		}
	}

	return Insights{
		AverageEmotion: acc,
		Analysed:       analysed,
		TotalEntries:   len(entries),
		UniqueTags:     len(s.store.TagCloud()),
	}
}

// Export renders the whole collection as indented JSON, in its current
// order. Local-only: nothing is fetched first.
func (s *JournalService) Export() ([]byte, error) {
	return json.MarshalIndent(s.store.All(), "", "  ")
}
