package config

import "errors"

var (
	ErrInvalidTheme           = errors.New("invalid theme setting")
	ErrInvalidPostBuildAction = errors.New("invalid post-build action")
	ErrInvalidRecentLimit     = errors.New("invalid recent files limit")
	ErrInvalidHistoryLimit    = errors.New("invalid history items limit")
	ErrInvalidDefaultProfile  = errors.New("invalid default profile name")
	ErrConfigDirUnavailable   = errors.New("configuration directory unavailable")
)
