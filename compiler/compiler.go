package compiler

import (
	"fmt"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// Resolver locates external toolchains. Satisfied by *probe.Prober.
type Resolver interface {
	LookPath(name string) (string, bool)
	ResolveGo() (string, bool)
	ResolveAhk2Exe() (string, bool)
	ResolveCSC() (string, bool)
	ResolveIExpress() (string, bool)
}

// Compiler dispatches a build request to the strategy matching its file
// type and turns the external tool's outcome into a BuildResult. Tool
// availability is verified before any process is spawned.
type Compiler struct {
	runner   Runner
	resolver Resolver
}

func New(resolver Resolver) *Compiler {
	return &Compiler{runner: execRunner{}, resolver: resolver}
}

func NewWithRunner(resolver Resolver, runner Runner) *Compiler {
	return &Compiler{runner: runner, resolver: resolver}
}

func (c *Compiler) Compile(req models.BuildRequest) models.BuildResult {
	switch req.FileType {
	case models.TypePowerShell:
		return c.compilePowerShell(req)
	case models.TypePython:
		return c.compilePython(req)
	case models.TypeBatch, models.TypeCommand, models.TypeVBScript:
		return c.compilePackage(req)
	case models.TypeNodeJS:
		return c.compileNode(req)
	case models.TypeAutoHotkey:
		return c.compileAutoHotkey(req)
	case models.TypeCSharp:
		return c.compileCSharp(req)
	case models.TypeGo:
		return c.compileGo(req)
	case models.TypeRuby:
		return c.compileRuby(req)
	default:
		return failure(fmt.Sprintf("Unsupported file type: %s", req.FileType))
	}
}

// run executes one resolved command. All failure kinds collapse into a
// uniform failed result: spawn errors carry the error text, nonzero exits
// carry the tool's merged output verbatim.
func (c *Compiler) run(cmd Command) models.BuildResult {
	utils.LogOutput("[COMPILER] Running: %s %v", cmd.Path, cmd.Args)
	output, exitCode, err := c.runner.Run(cmd)
	if err != nil {
		return failure(err.Error())
	}
	if exitCode != 0 {
		return failure(output)
	}
	return models.BuildResult{Succeeded: true, CombinedOutput: output}
}

func failure(output string) models.BuildResult {
	return models.BuildResult{Succeeded: false, CombinedOutput: output}
}

func validIcon(req models.BuildRequest) bool {
	return req.IconPath != "" && utils.FileExists(req.IconPath)
}
