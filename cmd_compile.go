package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"universal-compiler/app/compiler"
	"universal-compiler/app/utils"
)

func newCompileCommand() *cobra.Command {
	var (
		output      string
		icon        string
		profileName string
		admin       bool
		console     bool
		singleFile  bool
		product     string
		version     string
		company     string
		copyright   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "compile <source>",
		Short: "Compile one script into an executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if profileName == "" {
				profileName = app.settings.Get().DefaultProfile
			}
			req, err := app.engine.RequestForSource(args[0], profileName, "")
			if err != nil {
				return err
			}
			if output != "" {
				abs, err := filepath.Abs(output)
				if err != nil {
					return err
				}
				req.OutputPath = abs
			}
			if icon != "" {
				req.IconPath = icon
			}
			if cmd.Flags().Changed("admin") {
				req.AdminRequired = admin
			}
			if cmd.Flags().Changed("console") {
				req.ShowConsole = console
			}
			if cmd.Flags().Changed("single-file") {
				req.SingleFile = singleFile
			}
			if product != "" {
				req.Metadata.Product = product
			}
			if version != "" {
				req.Metadata.Version = version
			}
			if company != "" {
				req.Metadata.Company = company
			}
			if copyright != "" {
				req.Metadata.Copyright = copyright
			}
			if description != "" {
				req.Metadata.Description = description
			}

			if !app.engine.CheckCompiler(req.FileType) {
				return fmt.Errorf("%s is not installed", req.FileType.CompilerName())
			}

			fmt.Printf("Source:   %s (%s)\n", req.SourcePath, req.FileType.Description())
			fmt.Printf("Output:   %s\n", req.OutputPath)
			fmt.Printf("Compiler: %s\n", req.FileType.CompilerName())
			fmt.Printf("Estimate: %s\n", compiler.EstimateOutputSize(req.SourcePath, req.FileType))

			done, err := app.engine.Build(req, profileName)
			if err != nil {
				return err
			}
			outcome := <-done
			if !outcome.Result.Succeeded {
				fmt.Println(outcome.Result.CombinedOutput)
				return errors.New("build failed")
			}
			fmt.Printf("Build successful: %s (%s)\n", req.OutputPath, utils.FormatSize(outcome.Entry.Size))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output executable path")
	cmd.Flags().StringVar(&icon, "icon", "", "icon file to embed")
	cmd.Flags().StringVar(&profileName, "profile", "", "build profile (default: settings default_profile)")
	cmd.Flags().BoolVar(&admin, "admin", false, "require administrator elevation")
	cmd.Flags().BoolVar(&console, "console", false, "build a console application")
	cmd.Flags().BoolVar(&singleFile, "single-file", true, "package into a single file")
	cmd.Flags().StringVar(&product, "product", "", "product name metadata")
	cmd.Flags().StringVar(&version, "version-info", "", "version metadata")
	cmd.Flags().StringVar(&company, "company", "", "company metadata")
	cmd.Flags().StringVar(&copyright, "copyright", "", "copyright metadata")
	cmd.Flags().StringVar(&description, "description", "", "description metadata")
	return cmd
}

func newBatchCommand() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "batch <source>...",
		Short: "Compile several scripts sequentially",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if profileName == "" {
				profileName = app.settings.Get().DefaultProfile
			}
			summary := app.engine.BuildBatch(context.Background(), args, profileName)
			fmt.Printf("Batch complete: %d/%d files\n", summary.Done, summary.Total)
			if summary.Done < summary.Total {
				return fmt.Errorf("%d of %d builds did not complete", summary.Total-summary.Done, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "build profile applied to every file")
	return cmd
}
