package engine

import (
	"errors"
	"os"

	"golang.org/x/time/rate"

	"universal-compiler/app/compiler"
	"universal-compiler/app/models"
	"universal-compiler/app/store"
	"universal-compiler/app/utils"
)

// Gate answers whether the toolchain for a file type is invocable.
// Satisfied by *probe.Prober.
type Gate interface {
	CheckCompiler(fileType models.FileType) bool
}

// ErrBuildInProgress is returned when a build is dispatched while another
// one still holds the build slot.
var ErrBuildInProgress = errors.New("a build is already in progress")

// Engine owns the single-in-flight build protocol: the slot must be
// acquired before dispatch and is released only after the outcome has been
// persisted. External toolchains are not assumed safe to run concurrently,
// so there is never more than one build in flight.
type Engine struct {
	compiler *compiler.Compiler
	prober   Gate
	settings *store.SettingsStore
	profiles *store.ProfilesStore
	recent   *store.RecentStore
	history  *store.HistoryStore
	slot     chan struct{}
	limiter  *rate.Limiter
}

type Stores struct {
	Settings *store.SettingsStore
	Profiles *store.ProfilesStore
	Recent   *store.RecentStore
	History  *store.HistoryStore
}

func New(c *compiler.Compiler, p Gate, stores Stores) *Engine {
	return &Engine{
		compiler: c,
		prober:   p,
		settings: stores.Settings,
		profiles: stores.Profiles,
		recent:   stores.Recent,
		history:  stores.History,
		slot:     make(chan struct{}, 1),
		limiter:  rate.NewLimiter(rate.Every(batchInterval), 1),
	}
}

// Outcome is the completion signal for one build.
type Outcome struct {
	Result models.BuildResult
	Entry  models.HistoryEntry
}

// CheckCompiler is the availability gate exposed to the presentation layer.
func (e *Engine) CheckCompiler(fileType models.FileType) bool {
	return e.prober.CheckCompiler(fileType)
}

// Build dispatches one build on a worker goroutine and returns its
// completion channel. The slot is released after the final persistence
// write, never earlier.
func (e *Engine) Build(req models.BuildRequest, profileName string) (<-chan Outcome, error) {
	select {
	case e.slot <- struct{}{}:
	default:
		return nil, ErrBuildInProgress
	}
	done := make(chan Outcome, 1)
	go func() {
		outcome := e.runBuild(req, profileName)
		// Release before signaling so a caller reacting to the outcome
		// can immediately dispatch the next build.
		<-e.slot
		done <- outcome
	}()
	return done, nil
}

func (e *Engine) runBuild(req models.BuildRequest, profileName string) Outcome {
	utils.LogOutput("Build started: %s -> %s (%s)", req.SourcePath, req.OutputPath, req.FileType)

	result := e.compiler.Compile(req)

	// The compiler only reports process exit status; a build counts as
	// successful when the requested artifact actually exists afterwards.
	var size int64
	succeeded := result.Succeeded
	if succeeded {
		info, err := os.Stat(req.OutputPath)
		if err != nil {
			succeeded = false
			result = models.BuildResult{
				Succeeded:      false,
				CombinedOutput: "output file not found: " + req.OutputPath,
			}
		} else {
			size = info.Size()
		}
	}

	entry := models.NewHistoryEntry(req.SourcePath, req.OutputPath, req.FileType, succeeded, profileName, size)
	if err := e.history.Add(entry); err != nil {
		utils.LogOutput("[WARNING] Failed to record history entry: %v", err)
	}
	if err := e.recent.Add(req.SourcePath); err != nil {
		utils.LogOutput("[WARNING] Failed to update recent files: %v", err)
	}

	if succeeded {
		utils.LogOutput("Build succeeded: %s (%s)", req.OutputPath, utils.FormatSize(size))
		e.postBuild(req)
	} else {
		utils.LogOutput("Build failed: %s", req.SourcePath)
		utils.LogOutput("%s", result.CombinedOutput)
	}

	result.Succeeded = succeeded
	return Outcome{Result: result, Entry: entry}
}
