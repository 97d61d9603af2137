package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps one UTF-8 JSON document per concern inside the
// configuration directory (settings.json, profiles.json, ...).
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, ErrInvalidInput
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %v", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(concern string) string {
	return filepath.Join(b.dir, concern+".json")
}

func (b *FileBackend) Load(concern string) ([]byte, error) {
	data, err := os.ReadFile(b.path(concern))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", b.path(concern), err)
	}
	return data, nil
}

func (b *FileBackend) Save(concern string, data []byte) error {
	if err := os.WriteFile(b.path(concern), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", b.path(concern), err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
