package analysis

import (
	"math"

	"emojournal/internal/client/models"
)

// TextHeuristic derives pseudo emotion scores from the text alone. It is
// deterministic: the same text always yields the same scores. The numbers
// approximate nothing real; they only keep the UI meaningful offline.
func TextHeuristic(text string) models.AnalysisResult {
	var hash float64
	for _, r := range text {
		hash += float64(r)
	}
	base := func(n float64) float64 {
		return (math.Sin(hash+n) + 1) / 2
	}

	emotion := models.EmotionScores{
		"joy":      base(1),
		"sadness":  base(2),
		"anger":    base(3) * 0.4,
		"fear":     base(4) * 0.4,
		"surprise": base(5) * 0.6,
		"neutral":  0.2 + base(6)*0.2,
	}
	sentiment := math.Tanh((emotion["joy"] - (emotion["sadness"]+emotion["anger"]+emotion["fear"])/3) * 2)
	return models.AnalysisResult{Emotion: emotion, Sentiment: sentiment}
}

// AudioHeuristic derives a pseudo signal from the payload size only.
func AudioHeuristic(size int) models.AnalysisResult {
	n := math.Max(1, math.Log10(float64(size)))

	emotion := models.EmotionScores{
		"joy":      math.Min(1, n/6),
		"sadness":  math.Max(0, 1-n/8),
		"anger":    0.2,
		"fear":     0.2,
		"surprise": 0.3,
		"neutral":  0.5,
	}
	return models.AnalysisResult{Emotion: emotion, Sentiment: emotion["joy"] - emotion["sadness"]}
}
