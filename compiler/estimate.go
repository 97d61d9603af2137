package compiler

import (
	"os"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

// SizeUnknown is returned when no estimate can be produced.
const SizeUnknown = "Unknown"

type estimate struct {
	base       int64
	multiplier float64
}

// Per-type projection parameters: a fixed runtime overhead plus a factor
// applied to the source size.
var estimates = map[models.FileType]estimate{
	models.TypePowerShell: {5 * 1024 * 1024, 1.5},
	models.TypePython:     {15 * 1024 * 1024, 2},
	models.TypeBatch:      {50 * 1024, 1.2},
	models.TypeCommand:    {50 * 1024, 1.2},
	models.TypeNodeJS:     {40 * 1024 * 1024, 1.5},
	models.TypeVBScript:   {50 * 1024, 1.2},
	models.TypeAutoHotkey: {1 * 1024 * 1024, 1.3},
	models.TypeCSharp:     {10 * 1024, 1.1},
	models.TypeGo:         {2 * 1024 * 1024, 1.2},
	models.TypeRuby:       {20 * 1024 * 1024, 2},
}

// EstimateOutputSize projects the produced executable's size from the
// source size and type.
func EstimateOutputSize(sourcePath string, fileType models.FileType) string {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return SizeUnknown
	}
	e, ok := estimates[fileType]
	if !ok {
		return SizeUnknown
	}
	return utils.FormatSize(e.base + int64(float64(info.Size())*e.multiplier))
}
