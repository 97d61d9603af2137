package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"universal-compiler/app/utils"
)

type RecentStore struct {
	backend Backend
	max     int
	files   []string
}

// OpenRecent loads the recent-files list, silently dropping entries whose
// underlying file no longer exists.
func OpenRecent(backend Backend, max int) (*RecentStore, error) {
	if max <= 0 {
		return nil, ErrInvalidInput
	}
	s := &RecentStore{backend: backend, max: max}
	data, err := backend.Load(ConcernRecent)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("recent: %w: %v", ErrCorruptData, err)
	}
	var saved []string
	if err := json.Unmarshal(data, &saved); err != nil {
		return s, fmt.Errorf("recent: %w: %v", ErrCorruptData, err)
	}
	for _, path := range saved {
		if len(s.files) >= s.max {
			break
		}
		if utils.FileExists(path) {
			s.files = append(s.files, path)
		}
	}
	return s, nil
}

// Add moves an already-known path to the front instead of duplicating it.
func (s *RecentStore) Add(path string) error {
	if path == "" {
		return ErrInvalidInput
	}
	files := make([]string, 0, len(s.files)+1)
	files = append(files, path)
	for _, f := range s.files {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > s.max {
		files = files[:s.max]
	}
	s.files = files
	return s.save()
}

func (s *RecentStore) All() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

func (s *RecentStore) save() error {
	data, err := json.MarshalIndent(s.files, "", "  ")
	if err != nil {
		return fmt.Errorf("recent: failed to encode: %v", err)
	}
	return s.backend.Save(ConcernRecent, data)
}
