package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"universal-compiler/app/compiler"
	"universal-compiler/app/models"
	"universal-compiler/app/probe"
	"universal-compiler/app/templates"
)

// fileTypeArg accepts either a type name ("py") or a source path
// ("script.py").
func fileTypeArg(arg string) (models.FileType, error) {
	if t, ok := models.ParseFileType(arg); ok {
		return t, nil
	}
	if t, ok := models.FileTypeFromPath(arg); ok {
		return t, nil
	}
	return "", fmt.Errorf("unsupported file type: %s", arg)
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <type|source>",
		Short: "Check whether the toolchain for a file type is installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileType, err := fileTypeArg(args[0])
			if err != nil {
				return err
			}
			prober := probe.NewProber()
			if prober.CheckCompiler(fileType) {
				fmt.Printf("%s: Ready\n", fileType.CompilerName())
				return nil
			}
			return fmt.Errorf("%s is not installed", fileType.CompilerName())
		},
	}
}

func newDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Show the status of every supported toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tool := range probe.NewProber().Status() {
				state := "missing"
				if tool.Installed {
					state = "installed"
				} else if tool.Builtin {
					state = "built-in (missing)"
				}
				fmt.Printf("%-12s %-18s %-10s %s\n", tool.Name, tool.Desc, tool.Size, state)
			}
			return nil
		},
	}
}

func newEstimateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <source>",
		Short: "Estimate the size of the produced executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileType, ok := models.FileTypeFromPath(args[0])
			if !ok {
				return fmt.Errorf("unsupported file type: %s", args[0])
			}
			fmt.Println(compiler.EstimateOutputSize(args[0], fileType))
			return nil
		},
	}
}

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Create the starter scripts in the templates folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := templates.Initialize(app.paths.TemplatesDir); err != nil {
				return err
			}
			fmt.Println("Templates folder:", app.paths.TemplatesDir)
			for _, name := range templates.Names() {
				fmt.Println(" ", name)
			}
			return nil
		},
	}
}
