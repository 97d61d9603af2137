package config

const (
	ThemeDark  = "Dark"
	ThemeLight = "Light"
)

const (
	PostBuildNone       = "None"
	PostBuildOpenFolder = "Open Output Folder"
	PostBuildRun        = "Run Executable"
	PostBuildCopy       = "Copy to Folder..."
)

type Settings struct {
	Theme               string `json:"theme"`
	PostBuildAction     string `json:"post_build_action"`
	PostBuildCopyPath   string `json:"post_build_copy_path"`
	ShowNotifications   bool   `json:"show_notifications"`
	AutoCheckUpdates    bool   `json:"auto_check_updates"`
	MaxRecentFiles      int    `json:"max_recent_files"`
	MaxHistoryItems     int    `json:"max_history_items"`
	DefaultProfile      string `json:"default_profile"`
	SigningCertPath     string `json:"signing_cert_path"`
	SigningCertPassword string `json:"signing_cert_password"`
}

func NewDefaultSettings() Settings {
	return Settings{
		Theme:             ThemeDark,
		PostBuildAction:   PostBuildNone,
		ShowNotifications: true,
		AutoCheckUpdates:  true,
		MaxRecentFiles:    10,
		MaxHistoryItems:   50,
		DefaultProfile:    "Default",
	}
}

func (s *Settings) Validate() error {
	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		return ErrInvalidTheme
	}
	switch s.PostBuildAction {
	case PostBuildNone, PostBuildOpenFolder, PostBuildRun, PostBuildCopy:
	default:
		return ErrInvalidPostBuildAction
	}
	if s.MaxRecentFiles <= 0 {
		return ErrInvalidRecentLimit
	}
	if s.MaxHistoryItems <= 0 {
		return ErrInvalidHistoryLimit
	}
	if s.DefaultProfile == "" {
		return ErrInvalidDefaultProfile
	}
	return nil
}
