package engine

import (
	"path/filepath"

	"universal-compiler/app/config"
	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// postBuild runs the configured post-build action. Only reached on
// success; failures here are logged, never turned into build failures.
func (e *Engine) postBuild(req models.BuildRequest) {
	settings := e.settings.Get()
	switch settings.PostBuildAction {
	case config.PostBuildOpenFolder:
		if err := utils.OpenPath(filepath.Dir(req.OutputPath)); err != nil {
			utils.LogOutput("[WARNING] Failed to open output folder: %v", err)
		}
	case config.PostBuildRun:
		if err := utils.OpenPath(req.OutputPath); err != nil {
			utils.LogOutput("[WARNING] Failed to run executable: %v", err)
		}
	case config.PostBuildCopy:
		if settings.PostBuildCopyPath == "" {
			return
		}
		dest := filepath.Join(settings.PostBuildCopyPath, filepath.Base(req.OutputPath))
		if err := utils.CopyFile(req.OutputPath, dest); err != nil {
			utils.LogOutput("[WARNING] Failed to copy executable to %s: %v", settings.PostBuildCopyPath, err)
			return
		}
		utils.LogOutput("Copied to %s", settings.PostBuildCopyPath)
	}
}
