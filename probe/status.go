package probe

// ToolStatus is presentation data for the dependency overview: stable and
// side-effect free to compute repeatedly.
type ToolStatus struct {
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Installed bool   `json:"installed"`
	Size      string `json:"size"`
	Builtin   bool   `json:"builtin,omitempty"`
}

func (p *Prober) Status() []ToolStatus {
	return []ToolStatus{
		{Name: "PS2EXE", Desc: "PowerShell (.ps1)", Installed: p.CheckPS2EXE(), Size: "~2 MB"},
		{Name: "PyInstaller", Desc: "Python (.py)", Installed: p.CheckPyInstaller(), Size: "~15 MB"},
		{Name: "pkg", Desc: "Node.js (.js)", Installed: p.CheckPkg(), Size: "~50 MB"},
		{Name: "Go", Desc: "Go (.go)", Installed: p.CheckGo(), Size: "~150 MB"},
		{Name: "Ruby+Ocra", Desc: "Ruby (.rb)", Installed: p.CheckRuby(), Size: "~120 MB"},
		{Name: "AutoHotkey", Desc: "AHK (.ahk)", Installed: p.CheckAhk2Exe(), Size: "~5 MB"},
		{Name: "CSC", Desc: "C# (.cs)", Installed: p.CheckCSC(), Size: "Built-in", Builtin: true},
		{Name: "IExpress", Desc: "Batch/VBS", Installed: p.CheckIExpress(), Size: "Built-in", Builtin: true},
	}
}
