package services

import (
	"context"
	"encoding/json"
	"testing"

	"emojournal/internal/client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysedEntry(id string, emotion models.EmotionScores, tags ...string) models.JournalEntry {
	return models.JournalEntry{Id: id, Title: id, Emotion: emotion, Tags: tags}
}

func TestComputeInsights_AveragesPerLabelOverAnalysedEntries(t *testing.T) {
	ctx := context.Background()
	s, st := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	require.NoError(t, st.SetEntries(ctx, []models.JournalEntry{
		analysedEntry("a", models.EmotionScores{"joy": 0.8, "sadness": 0.2}),
		analysedEntry("b", models.EmotionScores{"joy": 0.4, "anger": 0.6}),
		{Id: "c", Title: "not analysed"},
	}))

	ins := s.ComputeInsights()

	assert.Equal(t, 3, ins.TotalEntries)
	assert.Equal(t, 2, ins.Analysed)

	require.Len(t, ins.AverageEmotion, 6)
	assert.InDelta(t, 0.6, ins.AverageEmotion["joy"], 1e-9)
	assert.InDelta(t, 0.1, ins.AverageEmotion["sadness"], 1e-9)
	assert.InDelta(t, 0.3, ins.AverageEmotion["anger"], 1e-9)
	// labels no entry carries still appear, at zero
	assert.Zero(t, ins.AverageEmotion["fear"])
	assert.Zero(t, ins.AverageEmotion["surprise"])
	assert.Zero(t, ins.AverageEmotion["neutral"])
}

func TestComputeInsights_IgnoresNonCanonicalLabels(t *testing.T) {
	ctx := context.Background()
	s, st := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	require.NoError(t, st.SetEntries(ctx, []models.JournalEntry{
		analysedEntry("a", models.EmotionScores{"joy": 0.5, "calm": 0.9}),
	}))

	ins := s.ComputeInsights()

	assert.InDelta(t, 0.5, ins.AverageEmotion["joy"], 1e-9)
	_, ok := ins.AverageEmotion["calm"]
	assert.False(t, ok)
}

func TestComputeInsights_CountsUniqueTags(t *testing.T) {
	ctx := context.Background()
	s, st := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	require.NoError(t, st.SetEntries(ctx, []models.JournalEntry{
		analysedEntry("a", nil, "work", "stress"),
		analysedEntry("b", nil, "work"),
	}))

	ins := s.ComputeInsights()

	assert.Equal(t, 2, ins.UniqueTags)
	assert.Equal(t, 0, ins.Analysed)
}

func TestComputeInsights_EmptyStore(t *testing.T) {
	s, _ := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	ins := s.ComputeInsights()

	assert.Equal(t, 0, ins.TotalEntries)
	assert.Equal(t, 0, ins.Analysed)
	assert.Equal(t, 0, ins.UniqueTags)
	require.Len(t, ins.AverageEmotion, 6)
	for label, score := range ins.AverageEmotion {
		assert.Zero(t, score, label)
	}
}

func TestExport_RendersCollectionAsJSON(t *testing.T) {
	ctx := context.Background()
	s, st := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	require.NoError(t, st.SetEntries(ctx, []models.JournalEntry{
		{Id: "1", Title: "first", Tags: []string{"work"}},
		{Id: "2", Title: "second", Tags: []string{}},
	}))

	data, err := s.Export()
	require.NoError(t, err)

	var got []models.JournalEntry
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Id)
	assert.Equal(t, []string{"work"}, got[0].Tags)
	assert.Equal(t, "second", got[1].Title)
}

func TestExport_EmptyStore(t *testing.T) {
	s, _ := setupJournal(t, &fakeEntryAPI{}, &fakeAnalyzer{})

	data, err := s.Export()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
