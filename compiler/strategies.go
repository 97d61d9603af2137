package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"universal-compiler/app/models"
)

func (c *Compiler) compilePowerShell(req models.BuildRequest) models.BuildResult {
	shell, ok := c.resolver.LookPath("powershell")
	if !ok {
		return failure("PowerShell not found")
	}

	psCmd := fmt.Sprintf(`Invoke-PS2EXE -InputFile "%s" -OutputFile "%s"`, req.SourcePath, req.OutputPath)
	if validIcon(req) {
		psCmd += fmt.Sprintf(` -IconFile "%s"`, req.IconPath)
	}
	if req.AdminRequired {
		psCmd += " -RequireAdmin"
	}
	if !req.ShowConsole {
		psCmd += " -NoConsole"
	}
	if req.Metadata.Product != "" {
		psCmd += fmt.Sprintf(` -Title "%s"`, req.Metadata.Product)
	}
	if req.Metadata.Version != "" {
		psCmd += fmt.Sprintf(` -Version "%s"`, req.Metadata.Version)
	}
	if req.Metadata.Company != "" {
		psCmd += fmt.Sprintf(` -Company "%s"`, req.Metadata.Company)
	}
	if req.Metadata.Copyright != "" {
		psCmd += fmt.Sprintf(` -Copyright "%s"`, req.Metadata.Copyright)
	}

	return c.run(Command{
		Path: shell,
		Args: []string{"-ExecutionPolicy", "Bypass", "-Command", psCmd},
	})
}

func (c *Compiler) compilePython(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.LookPath("pyinstaller")
	if !ok {
		return failure("PyInstaller not found")
	}

	outputDir := filepath.Dir(req.OutputPath)
	base := filepath.Base(req.OutputPath)
	outputName := strings.TrimSuffix(base, filepath.Ext(base))

	args := []string{"--distpath", outputDir, "--name", outputName, "--noconfirm"}
	if req.SingleFile {
		args = append(args, "--onefile")
	}
	if !req.ShowConsole {
		args = append(args, "--noconsole")
	}
	if validIcon(req) {
		args = append(args, "--icon", req.IconPath)
	}
	args = append(args, req.SourcePath)

	return c.run(Command{Path: tool, Args: args})
}

func (c *Compiler) compileNode(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.LookPath("pkg")
	if !ok {
		return failure("pkg not found")
	}
	return c.run(Command{
		Path: tool,
		Args: []string{req.SourcePath, "--target", "node18-win-x64", "--output", req.OutputPath},
	})
}

func (c *Compiler) compileAutoHotkey(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.ResolveAhk2Exe()
	if !ok {
		return failure("AutoHotkey compiler not found")
	}
	args := []string{"/in", req.SourcePath, "/out", req.OutputPath}
	if validIcon(req) {
		args = append(args, "/icon", req.IconPath)
	}
	return c.run(Command{Path: tool, Args: args})
}

func (c *Compiler) compileCSharp(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.ResolveCSC()
	if !ok {
		return failure("CSC compiler not found")
	}
	return c.run(Command{
		Path: tool,
		Args: []string{fmt.Sprintf("/out:%s", req.OutputPath), req.SourcePath},
	})
}

// compileGo runs the build from the source file's directory so the
// toolchain resolves the surrounding module.
func (c *Compiler) compileGo(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.ResolveGo()
	if !ok {
		return failure("Go compiler not found")
	}
	return c.run(Command{
		Path: tool,
		Args: []string{"build", "-o", req.OutputPath, req.SourcePath},
		Dir:  filepath.Dir(req.SourcePath),
	})
}

func (c *Compiler) compileRuby(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.LookPath("ocra")
	if !ok {
		return failure("Ocra not found")
	}
	return c.run(Command{
		Path: tool,
		Args: []string{req.SourcePath, "--output", req.OutputPath},
	})
}
