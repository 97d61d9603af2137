package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.0 KB"},
		{10350, "10.1 KB"},
		{1 << 20, "1.0 MB"},
		{15 * 1024 * 1024, "15.0 MB"},
		{1 << 30, "1.0 GB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.size))
	}
}

func TestLoggerLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.log")
	require.NoError(t, InitializeLogger(path))

	LogOutput("Build started: %s", "hello.py")
	LogOutput("[COMPILER] Running: pyinstaller")
	require.NoError(t, CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	lineFormat := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `)
	assert.Regexp(t, lineFormat, lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "Build started: hello.py"))
	assert.True(t, strings.HasSuffix(lines[1], "[COMPILER] Running: pyinstaller"))
}

func TestLoggerAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.log")

	require.NoError(t, InitializeLogger(path))
	LogOutput("first session")
	require.NoError(t, CloseLogger())

	require.NoError(t, InitializeLogger(path))
	LogOutput("second session")
	require.NoError(t, CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first session")
	assert.Contains(t, string(data), "second session")
}

func TestLogOutputWithoutLoggerIsSafe(t *testing.T) {
	require.NoError(t, CloseLogger())
	LogOutput("no sink configured")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestIsDirectoryAndEnsure(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	assert.False(t, IsDirectory(nested))
	require.NoError(t, EnsureDirectoryExists(nested))
	assert.True(t, IsDirectory(nested))
	// Already existing is not an error.
	require.NoError(t, EnsureDirectoryExists(nested))
}

func TestGetFileSize(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, 1234), 0644))

	size, err := GetFileSize(file)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), size)

	_, err = GetFileSize(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	require.NoError(t, CopyFile(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	assert.Error(t, CopyFile(filepath.Join(dir, "missing"), dst))
}
