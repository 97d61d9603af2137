package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"universal-compiler/app/config"
)

type SettingsStore struct {
	backend  Backend
	settings config.Settings
}

// OpenSettings loads the settings document. A missing document yields the
// defaults; a corrupt or invalid one also yields the defaults but the
// wrapped ErrCorruptData is returned alongside the usable store so the
// recovery stays visible to callers.
func OpenSettings(backend Backend) (*SettingsStore, error) {
	s := &SettingsStore{backend: backend, settings: config.NewDefaultSettings()}
	data, err := backend.Load(ConcernSettings)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: %w: %v", ErrCorruptData, err)
	}
	loaded := config.NewDefaultSettings()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("settings: %w: %v", ErrCorruptData, err)
	}
	if err := loaded.Validate(); err != nil {
		return s, fmt.Errorf("settings: %w: %v", ErrCorruptData, err)
	}
	s.settings = loaded
	return s, nil
}

func (s *SettingsStore) Get() config.Settings {
	return s.settings
}

func (s *SettingsStore) Put(settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return s.save()
}

func (s *SettingsStore) save() error {
	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: failed to encode: %v", err)
	}
	return s.backend.Save(ConcernSettings, data)
}
