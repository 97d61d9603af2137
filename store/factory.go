package store

import (
	"fmt"

	"universal-compiler/app/config"
)

func NewBackend(backendType string, paths config.Paths) (Backend, error) {
	switch backendType {
	case "", "file":
		return NewFileBackend(paths.Root)
	case "memory":
		return NewMemoryBackend(), nil
	case "bolt":
		return NewBoltBackend(paths.StoreFile)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backendType)
	}
}
