package probe

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// Prober reports whether each external toolchain is invocable on this host.
// Every check is a pure read of host state: no mutation, a strict boolean,
// and any internal failure degrades to false.
type Prober struct {
	lookPath    func(string) (string, error)
	getenv      func(string) string
	fileExists  func(string) bool
	moduleQuery func() (string, error)
}

func NewProber() *Prober {
	return &Prober{
		lookPath:    exec.LookPath,
		getenv:      os.Getenv,
		fileExists:  utils.FileExists,
		moduleQuery: queryPS2EXEModule,
	}
}

// queryPS2EXEModule asks PowerShell for the installed ps2exe module. The
// module is not a PATH executable, so a path probe cannot see it.
func queryPS2EXEModule() (string, error) {
	cmd := exec.Command("powershell", "-Command", "Get-Module -ListAvailable ps2exe")
	utils.HideWindow(cmd)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

func (p *Prober) LookPath(name string) (string, bool) {
	path, err := p.lookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

func (p *Prober) CheckPS2EXE() bool {
	out, err := p.moduleQuery()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(out), "ps2exe")
}

func (p *Prober) CheckPyInstaller() bool {
	_, ok := p.LookPath("pyinstaller")
	return ok
}

func (p *Prober) CheckPkg() bool {
	_, ok := p.LookPath("pkg")
	return ok
}

func (p *Prober) CheckRuby() bool {
	_, ok := p.LookPath("ocra")
	return ok
}

func (p *Prober) CheckGo() bool {
	_, ok := p.ResolveGo()
	return ok
}

func (p *Prober) CheckAhk2Exe() bool {
	_, ok := p.ResolveAhk2Exe()
	return ok
}

func (p *Prober) CheckCSC() bool {
	_, ok := p.ResolveCSC()
	return ok
}

func (p *Prober) CheckIExpress() bool {
	_, ok := p.ResolveIExpress()
	return ok
}

// ResolveGo prefers the PATH installation, falling back to the per-user
// installer location.
func (p *Prober) ResolveGo() (string, bool) {
	if path, ok := p.LookPath("go"); ok {
		return path, true
	}
	candidate := filepath.Join(p.getenv("LOCALAPPDATA"), "Programs", "Go", "bin", "go.exe")
	if p.fileExists(candidate) {
		return candidate, true
	}
	return "", false
}

func (p *Prober) ResolveAhk2Exe() (string, bool) {
	candidates := []string{
		filepath.Join(p.getenv("ProgramFiles"), "AutoHotkey", "Compiler", "Ahk2Exe.exe"),
		filepath.Join(p.getenv("ProgramFiles"), "AutoHotkey", "v2", "Compiler", "Ahk2Exe.exe"),
		filepath.Join(p.getenv("ProgramFiles(x86)"), "AutoHotkey", "Compiler", "Ahk2Exe.exe"),
	}
	return p.firstExisting(candidates)
}

func (p *Prober) ResolveCSC() (string, bool) {
	windir := p.windir()
	candidates := []string{
		filepath.Join(windir, "Microsoft.NET", "Framework64", "v4.0.30319", "csc.exe"),
		filepath.Join(windir, "Microsoft.NET", "Framework", "v4.0.30319", "csc.exe"),
	}
	return p.firstExisting(candidates)
}

func (p *Prober) ResolveIExpress() (string, bool) {
	candidate := filepath.Join(p.windir(), "System32", "iexpress.exe")
	if p.fileExists(candidate) {
		return candidate, true
	}
	return "", false
}

func (p *Prober) windir() string {
	windir := p.getenv("WINDIR")
	if windir == "" {
		windir = `C:\Windows`
	}
	return windir
}

func (p *Prober) firstExisting(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if p.fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// CheckCompiler reports whether the toolchain backing the given file type
// is invocable.
func (p *Prober) CheckCompiler(fileType models.FileType) bool {
	switch fileType {
	case models.TypePowerShell:
		return p.CheckPS2EXE()
	case models.TypePython:
		return p.CheckPyInstaller()
	case models.TypeBatch, models.TypeCommand, models.TypeVBScript:
		return p.CheckIExpress()
	case models.TypeNodeJS:
		return p.CheckPkg()
	case models.TypeAutoHotkey:
		return p.CheckAhk2Exe()
	case models.TypeCSharp:
		return p.CheckCSC()
	case models.TypeGo:
		return p.CheckGo()
	case models.TypeRuby:
		return p.CheckRuby()
	}
	return false
}
