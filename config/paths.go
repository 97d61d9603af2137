package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "UniversalCompiler"

// Paths describes the on-disk layout of the configuration directory:
// one structured document per store, the append-only build log, the bolt
// store file and the starter templates folder.
type Paths struct {
	Root         string
	StoreFile    string
	LogFile      string
	TemplatesDir string
}

func NewPaths(root string) Paths {
	return Paths{
		Root:         root,
		StoreFile:    filepath.Join(root, "stores.db"),
		LogFile:      filepath.Join(root, "install.log"),
		TemplatesDir: filepath.Join(root, "Templates"),
	}
}

func DefaultPaths() (Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("%w: %v", ErrConfigDirUnavailable, err)
	}
	return NewPaths(filepath.Join(base, appDirName)), nil
}

func (p Paths) EnsureRoot() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %v", p.Root, err)
	}
	return nil
}
