package gateway

import (
	"encoding/json"
	"strconv"

	"emojournal/internal/client/models"
)

// wireEntry is a journal entry as the backend serializes it.
type wireEntry struct {
	Id               int64          `json:"id"`
	User             json.Number    `json:"user"`
	Title            string         `json:"title"`
	Text             string         `json:"text"`
	AudioFile        *string        `json:"audio_file"`
	TextEmotions     map[string]any `json:"text_emotions"`
	SpeechEmotions   map[string]any `json:"speech_emotions"`
	CombinedEmotions map[string]any `json:"combined_emotions"`
	CreatedAt        string         `json:"created_at"`
}

// toNumber coerces a decoded JSON value to float64, defaulting to 0 for
// anything non-numeric.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// numberOK is like toNumber but reports whether the value was numeric at all.
func numberOK(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// normalizeScores turns a raw score object into an EmotionScores map,
// coercing every value to a number. Non-map input yields nil.
func normalizeScores(v any) models.EmotionScores {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(models.EmotionScores, len(m))
	for k, raw := range m {
		out[k] = toNumber(raw)
	}
	return out
}

// mapWireEntry translates the wire representation into the local one.
//
// Rules:
//   - mode is voice when audio_file is set, text otherwise
//   - voice entries prefer speech_emotions.scores (or speech_emotions
//     itself when there is no scores field) so every speech label renders;
//     combined_emotions.emotion is the fallback and the text-entry source
//   - sentiment comes from combined_emotions.sentiment when numeric
//   - tags start empty: they are local-only in this version
func mapWireEntry(w wireEntry) models.JournalEntry {
	voice := w.AudioFile != nil && *w.AudioFile != ""

	var emotion models.EmotionScores
	if voice && w.SpeechEmotions != nil {
		if scores, ok := w.SpeechEmotions["scores"]; ok {
			emotion = normalizeScores(scores)
		}
		if emotion == nil {
			emotion = normalizeScores(w.SpeechEmotions)
		}
	}
	if emotion == nil && w.CombinedEmotions != nil {
		emotion = normalizeScores(w.CombinedEmotions["emotion"])
	}

	var sentiment *float64
	if w.CombinedEmotions != nil {
		if f, ok := numberOK(w.CombinedEmotions["sentiment"]); ok {
			sentiment = &f
		}
	}

	e := models.JournalEntry{
		Id:        strconv.FormatInt(w.Id, 10),
		Title:     w.Title,
		Content:   w.Text,
		Tags:      []string{},
		Emotion:   emotion,
		Sentiment: sentiment,
		Mode:      models.ModeText,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.CreatedAt,
	}
	if voice {
		e.Mode = models.ModeVoice
		e.AudioURL = *w.AudioFile
	}
	return e
}

// serverID parses a local entry id as a server-assigned numeric id.
// Client-generated UUIDs fail the parse, signalling "never persisted".
func serverID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
