package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"universal-compiler/app/models"
)

type ProfilesStore struct {
	backend  Backend
	profiles map[string]models.Profile
}

// OpenProfiles loads user-saved profiles over the built-in set. Built-ins
// always exist; saved profiles of the same name override them.
func OpenProfiles(backend Backend) (*ProfilesStore, error) {
	s := &ProfilesStore{backend: backend, profiles: models.DefaultProfiles()}
	data, err := backend.Load(ConcernProfiles)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("profiles: %w: %v", ErrCorruptData, err)
	}
	saved := make(map[string]models.Profile)
	if err := json.Unmarshal(data, &saved); err != nil {
		return s, fmt.Errorf("profiles: %w: %v", ErrCorruptData, err)
	}
	for name, profile := range saved {
		s.profiles[name] = profile
	}
	return s, nil
}

func (s *ProfilesStore) Get(name string) (models.Profile, error) {
	profile, ok := s.profiles[name]
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return profile, nil
}

func (s *ProfilesStore) Put(name string, profile models.Profile) error {
	if name == "" {
		return ErrInvalidInput
	}
	s.profiles[name] = profile
	return s.save()
}

func (s *ProfilesStore) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *ProfilesStore) save() error {
	data, err := json.MarshalIndent(s.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("profiles: failed to encode: %v", err)
	}
	return s.backend.Save(ConcernProfiles, data)
}
