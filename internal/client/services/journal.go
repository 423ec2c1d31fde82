package services

import (
	"context"
	"fmt"
	"time"

	"emojournal/internal/client/models"
	"emojournal/internal/client/store"
	"emojournal/internal/common"
	"emojournal/internal/logging"

	"github.com/google/uuid"
)

// EntryAPI is the slice of the remote gateway the journal service uses.
type EntryAPI interface {
	FetchAll(ctx context.Context) ([]models.JournalEntry, error)
	Create(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error)
	Update(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	Remote() bool
}

// Analyzer produces emotion/sentiment feedback; it never fails.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) models.AnalysisResult
	AnalyzeAudio(ctx context.Context, audio []byte) models.AnalysisResult
}

// JournalService orchestrates the remote gateway, the analysis client and
// the local store. The store is the single source of truth the UI reads;
// remote failures on create/update/delete propagate and leave it untouched.
type JournalService struct {
	api      EntryAPI
	store    *store.Store
	analyzer Analyzer
	log      logging.Logger

	now func() time.Time
}

func NewJournalService(api EntryAPI, st *store.Store, analyzer Analyzer, log logging.Logger) *JournalService {
	return &JournalService{api: api, store: st, analyzer: analyzer, log: log, now: time.Now}
}

// Reconcile pulls the remote entry list and, when it is non-empty,
// replaces local state wholesale: remote wins, no merge. An empty result
// (including local-only mode) or a failed fetch leaves local state alone;
// the failure is logged, never surfaced.
func (s *JournalService) Reconcile(ctx context.Context) {
	remote, err := s.api.FetchAll(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load journal entries from API, using local data instead", "error", err)
		return
	}
	if len(remote) == 0 {
		return
	}
	if err := s.store.SetEntries(ctx, remote); err != nil {
		s.log.Warn(ctx, "error replacing local entries", "error", err)
	}
}

// Create analyses the draft, persists it remotely when a backend is
// configured, and upserts the result into the store. Tags and any locally
// computed feedback survive the round-trip: the backend does not persist
// tags in this version.
func (s *JournalService) Create(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error) {
	now := s.now().UTC().Format(time.RFC3339)
	if entry.Id == "" {
		entry.Id = uuid.NewString()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	s.analyze(ctx, &entry, audio)

	saved, err := s.api.Create(ctx, entry, audio)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error creating entry: %w", err)
	}
	saved = s.mergeLocal(entry, saved)

	if err := s.store.Upsert(ctx, saved); err != nil {
		return models.JournalEntry{}, err
	}
	return saved, nil
}

// Update analyses and replaces an existing entry. Entries that were never
// persisted remotely fall through to a create inside the gateway.
func (s *JournalService) Update(ctx context.Context, entry models.JournalEntry, audio []byte) (models.JournalEntry, error) {
	entry.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	s.analyze(ctx, &entry, audio)

	saved, err := s.api.Update(ctx, entry, audio)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error updating entry: %w", err)
	}
	saved = s.mergeLocal(entry, saved)

	// The server may have assigned a fresh id to an entry it had never
	// seen; drop the draft row so the id change does not duplicate it.
	if saved.Id != entry.Id {
		if err := s.store.Remove(ctx, entry.Id); err != nil {
			return models.JournalEntry{}, err
		}
	}
	if err := s.store.Upsert(ctx, saved); err != nil {
		return models.JournalEntry{}, err
	}
	return saved, nil
}

// Delete removes the entry remotely (a no-op for never-persisted ids) and
// locally. A remote failure propagates and leaves the store untouched.
func (s *JournalService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return s.store.Remove(ctx, id)
}

// SetTags updates an entry's tags locally. Tags are not round-tripped to
// the backend, a documented limitation of this version.
func (s *JournalService) SetTags(ctx context.Context, id string, tags []string) (models.JournalEntry, error) {
	entry, ok := s.store.ByID(id)
	if !ok {
		return models.JournalEntry{}, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	entry.SetTags(tags)
	entry.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.store.Upsert(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// ClearAll empties the local store only; remote state is untouched.
func (s *JournalService) ClearAll(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}

func (s *JournalService) List() []models.JournalEntry { return s.store.All() }

func (s *JournalService) Get(id string) (models.JournalEntry, bool) { return s.store.ByID(id) }

func (s *JournalService) Search(q string) []models.JournalEntry { return s.store.Search(q) }

func (s *JournalService) TagCloud() map[string]int { return s.store.TagCloud() }

func (s *JournalService) analyze(ctx context.Context, entry *models.JournalEntry, audio []byte) {
	var res models.AnalysisResult
	if len(audio) > 0 {
		entry.Mode = models.ModeVoice
		res = s.analyzer.AnalyzeAudio(ctx, audio)
	} else {
		entry.Mode = models.ModeText
		res = s.analyzer.AnalyzeText(ctx, entry.Content)
	}
	sentiment := res.Sentiment
	entry.Emotion = res.Emotion
	entry.Sentiment = &sentiment
}

// mergeLocal reapplies local-only fields to the server's rendition of an
// entry: tags never round-trip, and the backend omits feedback when its
// models are unavailable.
func (s *JournalService) mergeLocal(local, remote models.JournalEntry) models.JournalEntry {
	remote.Tags = local.Tags
	if remote.Emotion == nil {
		remote.Emotion = local.Emotion
		remote.Sentiment = local.Sentiment
	}
	return remote
}
