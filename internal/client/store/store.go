// Package store holds the local journal collection: the single source of
// truth the UI layer reads from. The collection lives in memory and every
// mutation is mirrored synchronously to the durable key/value layer, so
// state survives restarts even when no backend is configured.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"emojournal/internal/client/models"
	"emojournal/internal/client/repositories/kv"
	"emojournal/internal/common"
)

// snapshot is the persisted shape of the collection.
type snapshot struct {
	Entries []models.JournalEntry `json:"entries"`
}

// Store is an ordered collection of journal entries addressable by id.
//
// Ordering: new entries are prepended; updating an existing id replaces the
// entry in place and keeps its position. Ids are unique within the store.
//
// Mutations hold the write lock for their full duration, so each operation
// is atomic with respect to concurrent readers.
type Store struct {
	mu      sync.RWMutex
	entries []models.JournalEntry

	repo kv.Repository
}

// New constructs a Store backed by repo and loads the persisted snapshot.
// A nil repo yields a memory-only store.
func New(ctx context.Context, repo kv.Repository) (*Store, error) {
	s := &Store{repo: repo}
	if repo == nil {
		return s, nil
	}

	data, err := repo.Get(ctx, common.KeyJournalSnapshot)
	if err != nil {
		return nil, fmt.Errorf("error loading journal snapshot: %w", err)
	}
	if data == nil {
		return s, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("error decoding journal snapshot: %w", err)
	}
	s.entries = snap.Entries
	return s, nil
}

// persist mirrors the in-memory collection to the kv layer. Callers must
// hold the write lock.
func (s *Store) persist(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	data, err := json.Marshal(snapshot{Entries: s.entries})
	if err != nil {
		return fmt.Errorf("error encoding journal snapshot: %w", err)
	}
	if err := s.repo.Set(ctx, common.KeyJournalSnapshot, data); err != nil {
		return fmt.Errorf("error saving journal snapshot: %w", err)
	}
	return nil
}

// SetEntries replaces the entire collection. Used by the reconciliation
// flow when the backend wins wholesale.
func (s *Store) SetEntries(ctx context.Context, entries []models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]models.JournalEntry, len(entries))
	copy(s.entries, entries)
	return s.persist(ctx)
}

// Upsert replaces the entry with the same id in place, or prepends e when
// the id is new.
func (s *Store) Upsert(ctx context.Context, e models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Id == e.Id {
			s.entries[i] = e
			return s.persist(ctx)
		}
	}

	s.entries = append([]models.JournalEntry{e}, s.entries...)
	return s.persist(ctx)
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// ClearAll empties the collection. Local-only: remote state is untouched.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.persist(ctx)
}

// ByID returns the entry with the given id, if present.
func (s *Store) ByID(id string) (models.JournalEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		if s.entries[i].Id == id {
			return s.entries[i], true
		}
	}
	return models.JournalEntry{}, false
}

// All returns the entries in their current order.
func (s *Store) All() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Search returns entries whose title, content, or any tag contains the
// query, case-insensitively, preserving the collection order.
func (s *Store) Search(query string) []models.JournalEntry {
	k := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.JournalEntry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Title), k) ||
			strings.Contains(strings.ToLower(e.Content), k) ||
			tagMatch(e.Tags, k) {
			out = append(out, e)
		}
	}
	return out
}

func tagMatch(tags []string, k string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), k) {
			return true
		}
	}
	return false
}

// TagCloud returns the occurrence count of every tag across all entries.
func (s *Store) TagCloud() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := make(map[string]int)
	for _, e := range s.entries {
		for _, t := range e.Tags {
			m[t]++
		}
	}
	return m
}
