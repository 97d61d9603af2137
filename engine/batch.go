package engine

import (
	"context"
	"time"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// batchInterval paces successive toolchain invocations: external compilers
// share global installation state (module caches, package dirs) and are not
// safe to hammer back to back.
const batchInterval = time.Second

type BatchSummary struct {
	Total    int
	Done     int
	Outcomes []Outcome
}

// BuildBatch compiles the queued files strictly sequentially; each build's
// completion channel is awaited before the next file is dispatched. Files
// with an unsupported extension or a missing toolchain are skipped.
func (e *Engine) BuildBatch(ctx context.Context, paths []string, profileName string) BatchSummary {
	summary := BatchSummary{Total: len(paths)}
	for _, path := range paths {
		fileType, ok := models.FileTypeFromPath(path)
		if !ok {
			utils.LogOutput("Skipping %s: unsupported file type", path)
			continue
		}
		if !e.prober.CheckCompiler(fileType) {
			utils.LogOutput("Skipping %s: %s not installed", path, fileType.CompilerName())
			continue
		}
		if err := e.limiter.Wait(ctx); err != nil {
			utils.LogOutput("Batch aborted: %v", err)
			break
		}
		req, err := e.RequestForSource(path, profileName, "")
		if err != nil {
			utils.LogOutput("Skipping %s: %v", path, err)
			continue
		}
		done, err := e.Build(req, profileName)
		if err != nil {
			utils.LogOutput("Skipping %s: %v", path, err)
			continue
		}
		outcome := <-done
		summary.Outcomes = append(summary.Outcomes, outcome)
		if outcome.Result.Succeeded {
			summary.Done++
		}
	}
	utils.LogOutput("Batch complete: %d/%d files", summary.Done, summary.Total)
	return summary
}
