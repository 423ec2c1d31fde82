// Package models defines client-side data models used by the emotion
// journal CLI.
package models

// EntryMode distinguishes typed entries from recorded ones.
type EntryMode string

const (
	ModeText  EntryMode = "text"
	ModeVoice EntryMode = "voice"
)

// EmotionScores maps an emotion label to a score in [0,1]. The key set is
// open: the canonical text model emits six labels (joy, sadness, anger,
// fear, surprise, neutral) while the speech model emits an extended set of
// eight. Consumers must not assume a fixed arity.
type EmotionScores map[string]float64

// JournalEntry is a single journal entry as the client sees it.
//
// Id is a client-generated UUID until the entry has been persisted
// remotely; after that it is the server-assigned numeric id rendered as a
// string. Tags are local-only: they are never round-tripped to the backend
// in this version.
type JournalEntry struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Tags is an ordered, duplicate-free set of labels.
	Tags []string `json:"tags"`

	// AudioURL optionally references a playable audio resource.
	AudioURL string `json:"audioUrl,omitempty"`

	// Emotion holds approximate per-label scores, when analysed.
	Emotion EmotionScores `json:"emotion,omitempty"`

	// Sentiment is a scalar in [-1,1], when analysed.
	Sentiment *float64 `json:"sentiment,omitempty"`

	Mode EntryMode `json:"mode,omitempty"`

	// CreatedAt and UpdatedAt are RFC 3339 strings carried as received.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EffectiveMode derives the mode when it was never set: an entry with audio
// attached is a voice entry.
func (e *JournalEntry) EffectiveMode() EntryMode {
	if e.Mode != "" {
		return e.Mode
	}
	if e.AudioURL != "" {
		return ModeVoice
	}
	return ModeText
}

// SetTags replaces the entry's tags, dropping duplicates while preserving
// first-seen order.
func (e *JournalEntry) SetTags(tags []string) {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	e.Tags = out
}
