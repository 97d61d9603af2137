package models

type Profile struct {
	Console     bool   `json:"console"`
	Admin       bool   `json:"admin"`
	SingleFile  bool   `json:"single_file"`
	Version     string `json:"version"`
	Company     string `json:"company"`
	Copyright   string `json:"copyright"`
	Description string `json:"description"`
	Product     string `json:"product"`
}

const (
	ProfileDefault    = "Default"
	ProfileConsoleApp = "Console App"
	ProfileAdminTool  = "Admin Tool"
	ProfileGUIApp     = "GUI Application"
)

// DefaultProfiles returns the built-in profile set. These always exist and
// may be overridden by user-saved profiles of the same name.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		ProfileDefault: {
			Console:    false,
			Admin:      false,
			SingleFile: true,
			Version:    "1.0.0.0",
		},
		ProfileConsoleApp: {
			Console:    true,
			Admin:      false,
			SingleFile: true,
			Version:    "1.0.0.0",
		},
		ProfileAdminTool: {
			Console:    true,
			Admin:      true,
			SingleFile: true,
			Version:    "1.0.0.0",
		},
		ProfileGUIApp: {
			Console:    false,
			Admin:      false,
			SingleFile: true,
			Version:    "1.0.0.0",
		},
	}
}

func (p Profile) Metadata() Metadata {
	return Metadata{
		Product:     p.Product,
		Version:     p.Version,
		Company:     p.Company,
		Copyright:   p.Copyright,
		Description: p.Description,
	}
}
