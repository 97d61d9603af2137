package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// compilePackage wraps a batch/VBScript source into a self-extracting
// executable via IExpress. All parameters travel through a directive file
// staged in a throwaway workspace; the workspace is removed on every exit
// path, including failures before the packager ever runs.
func (c *Compiler) compilePackage(req models.BuildRequest) models.BuildResult {
	tool, ok := c.resolver.ResolveIExpress()
	if !ok {
		return failure("IExpress not found")
	}

	ws, err := newWorkspace()
	if err != nil {
		return failure(err.Error())
	}
	defer ws.Cleanup()

	stagedName, err := ws.stageSource(req.SourcePath)
	if err != nil {
		return failure(err.Error())
	}
	directive, err := ws.writeDirective(req.OutputPath, stagedName)
	if err != nil {
		return failure(err.Error())
	}

	return c.run(Command{Path: tool, Args: []string{"/N", "/Q", directive}})
}

type workspace struct {
	dir string
}

func newWorkspace() (*workspace, error) {
	dir, err := os.MkdirTemp("", "unicc-build-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %v", err)
	}
	utils.LogOutput("[COMPILER] Created packaging workspace: %s", dir)
	return &workspace{dir: dir}, nil
}

// stageSource copies the source into the workspace under its original base
// name. The original file is never touched.
func (w *workspace) stageSource(source string) (string, error) {
	name := filepath.Base(source)
	if err := utils.CopyFile(source, filepath.Join(w.dir, name)); err != nil {
		return "", fmt.Errorf("failed to stage source file: %v", err)
	}
	return name, nil
}

func (w *workspace) writeDirective(outputPath, stagedName string) (string, error) {
	content := fmt.Sprintf(`[Version]
Class=IEXPRESS
SEDVersion=3
[Options]
PackagePurpose=InstallApp
ShowInstallProgramWindow=0
HideExtractAnimation=1
UseLongFileName=1
InsideCompressed=0
CAB_FixedSize=0
RebootMode=N
TargetName=%s
FriendlyName=App
AppLaunched=cmd /c "%s"
PostInstallCmd=<None>
SourceFiles=SourceFiles
[Strings]
[SourceFiles]
SourceFiles0=%s%c
[SourceFiles0]
%%FILE0%%=%s
`, outputPath, stagedName, w.dir, os.PathSeparator, stagedName)

	directive := filepath.Join(w.dir, "config.sed")
	if err := os.WriteFile(directive, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write directive file: %v", err)
	}
	return directive, nil
}

// Cleanup removes the workspace and everything in it. Failure to clean is
// logged and swallowed, never escalated.
func (w *workspace) Cleanup() {
	if err := os.RemoveAll(w.dir); err != nil {
		utils.LogOutput("[WARNING] Failed to remove packaging workspace %s: %v", w.dir, err)
	}
}
