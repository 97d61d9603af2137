package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universal-compiler/app/models"
)

func TestInitializeWritesAllStarters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Templates")
	require.NoError(t, Initialize(dir))

	for _, name := range Names() {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestInitializeKeepsUserEdits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir))

	edited := filepath.Join(dir, "HelloWorld.py")
	require.NoError(t, os.WriteFile(edited, []byte("print('mine')\n"), 0644))

	require.NoError(t, Initialize(dir))
	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "print('mine')\n", string(data))
}

func TestEveryStarterHasSupportedType(t *testing.T) {
	names := Names()
	require.Len(t, names, 9)
	for _, name := range names {
		fileType, ok := models.FileTypeFromPath(name)
		assert.True(t, ok, name)
		assert.True(t, fileType.Valid(), name)
	}
}
