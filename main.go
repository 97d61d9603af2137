package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "unicc",
		Short:         "Compile scripts into standalone executables",
		Long:          "Universal Compiler invokes the matching script-to-executable toolchain for PowerShell, Python, Batch, Node.js, VBScript, AutoHotkey, C#, Go and Ruby sources.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config-dir", "", "configuration directory (default: per-user config dir)")
	root.PersistentFlags().String("store", "file", "store backend (file, memory or bolt)")

	root.AddCommand(
		newCompileCommand(),
		newBatchCommand(),
		newCheckCommand(),
		newDepsCommand(),
		newEstimateCommand(),
		newHistoryCommand(),
		newRecentCommand(),
		newProfilesCommand(),
		newSettingsCommand(),
		newTemplatesCommand(),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
