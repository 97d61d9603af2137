package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universal-compiler/app/config"
	"universal-compiler/app/models"
)

func newFileBackend(t *testing.T) (*FileBackend, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	return backend, dir
}

func TestSettingsDefaultsOnFirstRun(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenSettings(backend)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultSettings(), s.Get())
}

func TestSettingsRoundTrip(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenSettings(backend)
	require.NoError(t, err)

	settings := s.Get()
	settings.Theme = config.ThemeLight
	settings.MaxRecentFiles = 3
	settings.DefaultProfile = "Console App"
	require.NoError(t, s.Put(settings))

	reloaded, err := OpenSettings(backend)
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded.Get())
}

func TestSettingsCorruptFileFallsBackToDefaults(t *testing.T) {
	backend, dir := newFileBackend(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0644))

	s, err := OpenSettings(backend)
	require.ErrorIs(t, err, ErrCorruptData)
	assert.Equal(t, config.NewDefaultSettings(), s.Get())
}

func TestSettingsUnknownKeysIgnored(t *testing.T) {
	backend, dir := newFileBackend(t)
	doc := `{"theme": "Light", "no_such_key": 42}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(doc), 0644))

	s, err := OpenSettings(backend)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeLight, s.Get().Theme)
	// Keys absent from the document keep their defaults.
	assert.Equal(t, 50, s.Get().MaxHistoryItems)
}

func TestSettingsRejectsInvalidUpdate(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenSettings(backend)
	require.NoError(t, err)

	settings := s.Get()
	settings.MaxHistoryItems = 0
	assert.ErrorIs(t, s.Put(settings), config.ErrInvalidHistoryLimit)
}

func TestProfilesBuiltinsAlwaysExist(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenProfiles(backend)
	require.NoError(t, err)

	for _, name := range []string{"Default", "Console App", "Admin Tool", "GUI Application"} {
		_, err := s.Get(name)
		assert.NoError(t, err, name)
	}
}

func TestProfilesSaveAndOverride(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenProfiles(backend)
	require.NoError(t, err)

	custom := models.Profile{Console: true, SingleFile: true, Version: "2.0.0.0", Company: "ACME"}
	require.NoError(t, s.Put("Custom", custom))
	override := models.Profile{Console: true, Admin: true, Version: "9.9.9.9"}
	require.NoError(t, s.Put("Default", override))

	reloaded, err := OpenProfiles(backend)
	require.NoError(t, err)

	got, err := reloaded.Get("Custom")
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	got, err = reloaded.Get("Default")
	require.NoError(t, err)
	assert.Equal(t, override, got)

	_, err = reloaded.Get("Nope")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfilesCorruptFileKeepsBuiltins(t *testing.T) {
	backend, dir := newFileBackend(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles.json"), []byte("[]"), 0644))

	s, err := OpenProfiles(backend)
	require.ErrorIs(t, err, ErrCorruptData)
	assert.ElementsMatch(t, []string{"Admin Tool", "Console App", "Default", "GUI Application"}, s.Names())
}

func makeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("script%d.py", i))
		require.NoError(t, os.WriteFile(paths[i], []byte("print()"), 0644))
	}
	return paths
}

func TestRecentDedupAndReorder(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenRecent(backend, 10)
	require.NoError(t, err)

	paths := makeFiles(t, 2)
	require.NoError(t, s.Add(paths[0]))
	require.NoError(t, s.Add(paths[1]))
	require.NoError(t, s.Add(paths[0]))

	assert.Equal(t, []string{paths[0], paths[1]}, s.All())
}

func TestRecentCap(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenRecent(backend, 3)
	require.NoError(t, err)

	paths := makeFiles(t, 5)
	for _, p := range paths {
		require.NoError(t, s.Add(p))
	}
	assert.Equal(t, []string{paths[4], paths[3], paths[2]}, s.All())
}

func TestRecentDropsMissingFilesOnLoad(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenRecent(backend, 10)
	require.NoError(t, err)

	paths := makeFiles(t, 3)
	for _, p := range paths {
		require.NoError(t, s.Add(p))
	}
	require.NoError(t, os.Remove(paths[1]))

	reloaded, err := OpenRecent(backend, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{paths[2], paths[0]}, reloaded.All())
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	backend, _ := newFileBackend(t)
	max := 5
	s, err := OpenHistory(backend, max)
	require.NoError(t, err)

	for i := 0; i < max+5; i++ {
		entry := models.NewHistoryEntry(
			fmt.Sprintf("src%d.py", i), fmt.Sprintf("out%d.exe", i),
			models.TypePython, true, "Default", int64(i))
		require.NoError(t, s.Add(entry))
	}

	entries := s.All()
	require.Len(t, entries, max)
	// Newest first: the last inserted entry leads, the five oldest are gone.
	assert.Equal(t, "src9.py", entries[0].Source)
	assert.Equal(t, "src5.py", entries[max-1].Source)
}

func TestHistoryRoundTrip(t *testing.T) {
	backend, _ := newFileBackend(t)
	s, err := OpenHistory(backend, 10)
	require.NoError(t, err)

	entry := models.NewHistoryEntry("hello.py", "hello.exe", models.TypePython, false, "Default", 0)
	require.NoError(t, s.Add(entry))

	reloaded, err := OpenHistory(backend, 10)
	require.NoError(t, err)
	require.Len(t, reloaded.All(), 1)
	got := reloaded.All()[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.Source, got.Source)
	assert.Equal(t, entry.Success, got.Success)
	assert.Equal(t, entry.Size, got.Size)
	assert.True(t, entry.Timestamp.Equal(got.Timestamp))
}

func TestHistoryCorruptFileFallsBackEmpty(t *testing.T) {
	backend, dir := newFileBackend(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("garbage"), 0644))

	s, err := OpenHistory(backend, 10)
	require.ErrorIs(t, err, ErrCorruptData)
	assert.Empty(t, s.All())
}
