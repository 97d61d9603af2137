package probe

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universal-compiler/app/models"
)

func newFakeProber() *Prober {
	return &Prober{
		lookPath:    func(string) (string, error) { return "", errors.New("not found") },
		getenv:      func(string) string { return "" },
		fileExists:  func(string) bool { return false },
		moduleQuery: func() (string, error) { return "", errors.New("powershell missing") },
	}
}

func TestCheckPS2EXE(t *testing.T) {
	p := newFakeProber()
	assert.False(t, p.CheckPS2EXE())

	p.moduleQuery = func() (string, error) { return "", nil }
	assert.False(t, p.CheckPS2EXE(), "empty module listing means not installed")

	p.moduleQuery = func() (string, error) {
		return "Script    1.0.15    PS2EXE    {Invoke-PS2EXE}", nil
	}
	assert.True(t, p.CheckPS2EXE(), "match is case-insensitive")
}

func TestLookPathBackedChecks(t *testing.T) {
	p := newFakeProber()
	assert.False(t, p.CheckPyInstaller())
	assert.False(t, p.CheckPkg())
	assert.False(t, p.CheckRuby())

	p.lookPath = func(name string) (string, error) {
		if name == "pyinstaller" {
			return `C:\Python\Scripts\pyinstaller.exe`, nil
		}
		return "", errors.New("not found")
	}
	assert.True(t, p.CheckPyInstaller())
	assert.False(t, p.CheckPkg())
}

func TestResolveGoPrefersPath(t *testing.T) {
	p := newFakeProber()
	p.lookPath = func(name string) (string, error) {
		if name == "go" {
			return `C:\Go\bin\go.exe`, nil
		}
		return "", errors.New("not found")
	}
	p.fileExists = func(string) bool { t.Fatal("must not touch the filesystem when PATH resolves"); return false }

	path, ok := p.ResolveGo()
	require.True(t, ok)
	assert.Equal(t, `C:\Go\bin\go.exe`, path)
}

func TestResolveGoFallsBackToUserInstall(t *testing.T) {
	p := newFakeProber()
	p.getenv = func(key string) string {
		if key == "LOCALAPPDATA" {
			return `C:\Users\dev\AppData\Local`
		}
		return ""
	}
	expected := filepath.Join(`C:\Users\dev\AppData\Local`, "Programs", "Go", "bin", "go.exe")
	p.fileExists = func(path string) bool { return path == expected }

	path, ok := p.ResolveGo()
	require.True(t, ok)
	assert.Equal(t, expected, path)
}

func TestResolveAhk2ExeCandidateOrder(t *testing.T) {
	p := newFakeProber()
	p.getenv = func(key string) string {
		switch key {
		case "ProgramFiles":
			return `C:\Program Files`
		case "ProgramFiles(x86)":
			return `C:\Program Files (x86)`
		}
		return ""
	}

	_, ok := p.ResolveAhk2Exe()
	assert.False(t, ok)

	v2 := filepath.Join(`C:\Program Files`, "AutoHotkey", "v2", "Compiler", "Ahk2Exe.exe")
	p.fileExists = func(path string) bool { return path == v2 }
	path, ok := p.ResolveAhk2Exe()
	require.True(t, ok)
	assert.Equal(t, v2, path)

	// The v1 location wins over v2 when both exist.
	v1 := filepath.Join(`C:\Program Files`, "AutoHotkey", "Compiler", "Ahk2Exe.exe")
	p.fileExists = func(path string) bool { return path == v1 || path == v2 }
	path, ok = p.ResolveAhk2Exe()
	require.True(t, ok)
	assert.Equal(t, v1, path)
}

func TestResolveCSCPrefers64Bit(t *testing.T) {
	p := newFakeProber()
	csc64 := filepath.Join(`C:\Windows`, "Microsoft.NET", "Framework64", "v4.0.30319", "csc.exe")
	csc32 := filepath.Join(`C:\Windows`, "Microsoft.NET", "Framework", "v4.0.30319", "csc.exe")
	p.fileExists = func(path string) bool { return path == csc64 || path == csc32 }

	path, ok := p.ResolveCSC()
	require.True(t, ok)
	assert.Equal(t, csc64, path)

	p.fileExists = func(path string) bool { return path == csc32 }
	path, ok = p.ResolveCSC()
	require.True(t, ok)
	assert.Equal(t, csc32, path)
}

func TestResolveIExpressUsesWindir(t *testing.T) {
	p := newFakeProber()
	p.getenv = func(key string) string {
		if key == "WINDIR" {
			return `D:\Win`
		}
		return ""
	}
	expected := filepath.Join(`D:\Win`, "System32", "iexpress.exe")
	p.fileExists = func(path string) bool { return path == expected }

	path, ok := p.ResolveIExpress()
	require.True(t, ok)
	assert.Equal(t, expected, path)
}

func TestResolveIExpressDefaultWindir(t *testing.T) {
	p := newFakeProber()
	expected := filepath.Join(`C:\Windows`, "System32", "iexpress.exe")
	var probed []string
	p.fileExists = func(path string) bool {
		probed = append(probed, path)
		return false
	}

	_, ok := p.ResolveIExpress()
	assert.False(t, ok)
	assert.Equal(t, []string{expected}, probed)
}

func TestCheckCompilerDispatch(t *testing.T) {
	p := newFakeProber()
	for _, fileType := range models.AllFileTypes() {
		assert.False(t, p.CheckCompiler(fileType), string(fileType))
	}
	assert.False(t, p.CheckCompiler(models.FileType("txt")))

	p.lookPath = func(name string) (string, error) {
		if name == "pyinstaller" {
			return "pyinstaller", nil
		}
		return "", errors.New("not found")
	}
	assert.True(t, p.CheckCompiler(models.TypePython))
	assert.False(t, p.CheckCompiler(models.TypeGo))
}

func TestStatusCoversAllTools(t *testing.T) {
	p := newFakeProber()
	status := p.Status()
	require.Len(t, status, 8)

	names := make([]string, len(status))
	for i, s := range status {
		names[i] = s.Name
		assert.False(t, s.Installed)
	}
	assert.Equal(t, []string{"PS2EXE", "PyInstaller", "pkg", "Go", "Ruby+Ocra", "AutoHotkey", "CSC", "IExpress"}, names)

	builtins := 0
	for _, s := range status {
		if s.Builtin {
			builtins++
			assert.Equal(t, "Built-in", s.Size)
		}
	}
	assert.Equal(t, 2, builtins)
}
