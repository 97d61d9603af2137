package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// RequestForSource builds a request from a source path and a named profile.
// When outputDir is empty the executable lands next to the source as
// "<base>.exe".
func (e *Engine) RequestForSource(sourcePath, profileName, outputDir string) (models.BuildRequest, error) {
	if !utils.FileExists(sourcePath) {
		return models.BuildRequest{}, fmt.Errorf("source file not found: %s", sourcePath)
	}
	fileType, ok := models.FileTypeFromPath(sourcePath)
	if !ok {
		return models.BuildRequest{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(sourcePath))
	}
	profile, err := e.profiles.Get(profileName)
	if err != nil {
		return models.BuildRequest{}, err
	}
	if outputDir == "" {
		outputDir = filepath.Dir(sourcePath)
	}
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".exe"

	return models.BuildRequest{
		SourcePath:    sourcePath,
		OutputPath:    filepath.Join(outputDir, name),
		FileType:      fileType,
		AdminRequired: profile.Admin,
		ShowConsole:   profile.Console,
		SingleFile:    profile.SingleFile,
		Metadata:      profile.Metadata(),
	}, nil
}
