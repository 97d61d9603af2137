package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"universal-compiler/app/models"
)

type HistoryStore struct {
	backend Backend
	max     int
	entries []models.HistoryEntry
}

func OpenHistory(backend Backend, max int) (*HistoryStore, error) {
	if max <= 0 {
		return nil, ErrInvalidInput
	}
	s := &HistoryStore{backend: backend, max: max}
	data, err := backend.Load(ConcernHistory)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("history: %w: %v", ErrCorruptData, err)
	}
	var saved []models.HistoryEntry
	if err := json.Unmarshal(data, &saved); err != nil {
		return s, fmt.Errorf("history: %w: %v", ErrCorruptData, err)
	}
	if len(saved) > s.max {
		saved = saved[:s.max]
	}
	s.entries = saved
	return s, nil
}

// Add prepends the entry; entries beyond the cap are evicted oldest-first.
// Entries are never mutated after insertion.
func (s *HistoryStore) Add(entry models.HistoryEntry) error {
	entries := make([]models.HistoryEntry, 0, len(s.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, s.entries...)
	if len(entries) > s.max {
		entries = entries[:s.max]
	}
	s.entries = entries
	return s.save()
}

func (s *HistoryStore) All() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *HistoryStore) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("history: failed to encode: %v", err)
	}
	return s.backend.Save(ConcernHistory, data)
}
