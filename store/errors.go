package store

import "errors"

var (
	ErrNotFound           = errors.New("document not found")
	ErrCorruptData        = errors.New("corrupt store data, defaults restored")
	ErrUnknownConcern     = errors.New("unknown store concern")
	ErrUnsupportedBackend = errors.New("unsupported store backend")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidInput       = errors.New("invalid input parameters")
)
