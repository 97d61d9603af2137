package templates

import (
	"os"
	"path/filepath"
	"sort"

	"universal-compiler/app/utils"
)

// Starter scripts, one per supported source type. Written into the
// templates folder on demand; existing files are never overwritten.
var starters = map[string]string{
	"HelloWorld.ps1": `# PowerShell Hello World
param([string]$Name = "World")
Add-Type -AssemblyName PresentationFramework
[System.Windows.MessageBox]::Show("Hello, $Name!", "Hello", "OK", "Information")
`,
	"HelloWorld.py": `# Python Hello World
import tkinter as tk
from tkinter import messagebox

root = tk.Tk()
root.withdraw()
messagebox.showinfo("Hello", "Hello, World!")
root.destroy()
`,
	"HelloWorld.bat": `@echo off
echo Hello, World!
pause
`,
	"HelloWorld.js": `// Node.js Hello World
console.log("Hello, World!");
`,
	"HelloWorld.cs": `using System;
using System.Windows.Forms;

class Program {
    [STAThread]
    static void Main() {
        MessageBox.Show("Hello, World!", "Hello");
    }
}
`,
	"HelloWorld.go": `package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
`,
	"HelloWorld.rb": `# Ruby Hello World
puts "Hello, World!"
`,
	"HelloWorld.vbs": `MsgBox "Hello, World!", vbInformation, "Hello"
`,
	"HelloWorld.ahk": `MsgBox, Hello, World!
`,
}

func Names() []string {
	names := make([]string, 0, len(starters))
	for name := range starters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Initialize creates any missing starter scripts under dir.
func Initialize(dir string) error {
	if err := utils.EnsureDirectoryExists(dir); err != nil {
		return err
	}
	for name, content := range starters {
		path := filepath.Join(dir, name)
		if utils.FileExists(path) {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
