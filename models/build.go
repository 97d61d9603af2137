package models

import (
	"path/filepath"
	"strings"
)

type FileType string

const (
	TypePowerShell FileType = "ps1"
	TypePython     FileType = "py"
	TypeBatch      FileType = "bat"
	TypeCommand    FileType = "cmd"
	TypeNodeJS     FileType = "js"
	TypeVBScript   FileType = "vbs"
	TypeAutoHotkey FileType = "ahk"
	TypeCSharp     FileType = "cs"
	TypeGo         FileType = "go"
	TypeRuby       FileType = "rb"
)

func AllFileTypes() []FileType {
	return []FileType{
		TypePowerShell, TypePython, TypeBatch, TypeCommand, TypeNodeJS,
		TypeVBScript, TypeAutoHotkey, TypeCSharp, TypeGo, TypeRuby,
	}
}

func ParseFileType(ext string) (FileType, bool) {
	t := FileType(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if t.Valid() {
		return t, true
	}
	return "", false
}

func FileTypeFromPath(path string) (FileType, bool) {
	return ParseFileType(filepath.Ext(path))
}

func (t FileType) Valid() bool {
	switch t {
	case TypePowerShell, TypePython, TypeBatch, TypeCommand, TypeNodeJS,
		TypeVBScript, TypeAutoHotkey, TypeCSharp, TypeGo, TypeRuby:
		return true
	}
	return false
}

func (t FileType) Description() string {
	switch t {
	case TypePowerShell:
		return "PowerShell Script"
	case TypePython:
		return "Python Script"
	case TypeBatch:
		return "Batch Script"
	case TypeCommand:
		return "Command Script"
	case TypeNodeJS:
		return "JavaScript"
	case TypeVBScript:
		return "VBScript"
	case TypeAutoHotkey:
		return "AutoHotkey"
	case TypeCSharp:
		return "C# Source"
	case TypeGo:
		return "Go Source"
	case TypeRuby:
		return "Ruby Script"
	}
	return "Unknown"
}

func (t FileType) CompilerName() string {
	switch t {
	case TypePowerShell:
		return "PS2EXE"
	case TypePython:
		return "PyInstaller"
	case TypeBatch, TypeCommand, TypeVBScript:
		return "IExpress"
	case TypeNodeJS:
		return "pkg"
	case TypeAutoHotkey:
		return "Ahk2Exe"
	case TypeCSharp:
		return "CSC"
	case TypeGo:
		return "go build"
	case TypeRuby:
		return "Ocra"
	}
	return "Unknown"
}

type Metadata struct {
	Product     string `json:"product"`
	Version     string `json:"version"`
	Company     string `json:"company"`
	Copyright   string `json:"copyright"`
	Description string `json:"description"`
}

type BuildRequest struct {
	SourcePath    string   `json:"sourcePath"`
	OutputPath    string   `json:"outputPath"`
	FileType      FileType `json:"fileType"`
	IconPath      string   `json:"iconPath,omitempty"`
	AdminRequired bool     `json:"adminRequired"`
	ShowConsole   bool     `json:"showConsole"`
	SingleFile    bool     `json:"singleFile"`
	Metadata      Metadata `json:"metadata"`
}

type BuildResult struct {
	Succeeded      bool   `json:"succeeded"`
	CombinedOutput string `json:"combinedOutput"`
}
