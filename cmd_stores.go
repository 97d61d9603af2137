package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"universal-compiler/app/models"
	"universal-compiler/app/utils"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past builds, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			entries := app.history.All()
			if len(entries) == 0 {
				fmt.Println("No compilation history")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			for _, entry := range entries {
				status := "FAIL"
				size := "-"
				if entry.Success {
					status = "OK"
					size = utils.FormatSize(entry.Size)
				}
				fmt.Printf("%s  [%-4s] %-12s %-30s %s\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"),
					status, entry.Type, filepath.Base(entry.Source), size)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum entries to show (0 = all)")
	return cmd
}

func newRecentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently compiled source files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			files := app.recent.All()
			if len(files) == 0 {
				fmt.Println("No recent files")
				return nil
			}
			for _, file := range files {
				fmt.Println(file)
			}
			return nil
		},
	}
}

func newProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage build profiles",
	}
	cmd.AddCommand(newProfilesListCommand(), newProfilesShowCommand(), newProfilesSaveCommand())
	return cmd
}

func newProfilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profile names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			defaultName := app.settings.Get().DefaultProfile
			for _, name := range app.profiles.Names() {
				marker := " "
				if name == defaultName {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newProfilesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			profile, err := app.profiles.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Console:     %v\n", profile.Console)
			fmt.Printf("Admin:       %v\n", profile.Admin)
			fmt.Printf("Single file: %v\n", profile.SingleFile)
			fmt.Printf("Version:     %s\n", profile.Version)
			fmt.Printf("Product:     %s\n", profile.Product)
			fmt.Printf("Company:     %s\n", profile.Company)
			fmt.Printf("Copyright:   %s\n", profile.Copyright)
			fmt.Printf("Description: %s\n", profile.Description)
			return nil
		},
	}
}

func newProfilesSaveCommand() *cobra.Command {
	var profile models.Profile

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save or update a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.profiles.Put(args[0], profile); err != nil {
				return err
			}
			fmt.Printf("Profile %q saved\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&profile.Console, "console", false, "console application")
	cmd.Flags().BoolVar(&profile.Admin, "admin", false, "require administrator elevation")
	cmd.Flags().BoolVar(&profile.SingleFile, "single-file", true, "package into a single file")
	cmd.Flags().StringVar(&profile.Version, "version-info", "1.0.0.0", "version metadata")
	cmd.Flags().StringVar(&profile.Product, "product", "", "product name metadata")
	cmd.Flags().StringVar(&profile.Company, "company", "", "company metadata")
	cmd.Flags().StringVar(&profile.Copyright, "copyright", "", "copyright metadata")
	cmd.Flags().StringVar(&profile.Description, "description", "", "description metadata")
	return cmd
}

func newSettingsCommand() *cobra.Command {
	var (
		theme          string
		postBuild      string
		copyPath       string
		defaultProfile string
		maxRecent      int
		maxHistory     int
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update application settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			settings := app.settings.Get()
			changed := false
			if cmd.Flags().Changed("theme") {
				settings.Theme = theme
				changed = true
			}
			if cmd.Flags().Changed("post-build") {
				settings.PostBuildAction = postBuild
				changed = true
			}
			if cmd.Flags().Changed("copy-path") {
				settings.PostBuildCopyPath = copyPath
				changed = true
			}
			if cmd.Flags().Changed("default-profile") {
				settings.DefaultProfile = defaultProfile
				changed = true
			}
			if cmd.Flags().Changed("max-recent") {
				settings.MaxRecentFiles = maxRecent
				changed = true
			}
			if cmd.Flags().Changed("max-history") {
				settings.MaxHistoryItems = maxHistory
				changed = true
			}
			if changed {
				if err := app.settings.Put(settings); err != nil {
					return err
				}
			}

			settings = app.settings.Get()
			fmt.Printf("Theme:            %s\n", settings.Theme)
			fmt.Printf("Post-build:       %s\n", settings.PostBuildAction)
			fmt.Printf("Copy path:        %s\n", settings.PostBuildCopyPath)
			fmt.Printf("Default profile:  %s\n", settings.DefaultProfile)
			fmt.Printf("Max recent files: %d\n", settings.MaxRecentFiles)
			fmt.Printf("Max history:      %d\n", settings.MaxHistoryItems)
			fmt.Printf("Notifications:    %v\n", settings.ShowNotifications)
			fmt.Printf("Auto updates:     %v\n", settings.AutoCheckUpdates)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Dark or Light")
	cmd.Flags().StringVar(&postBuild, "post-build", "", "post-build action")
	cmd.Flags().StringVar(&copyPath, "copy-path", "", "post-build copy destination")
	cmd.Flags().StringVar(&defaultProfile, "default-profile", "", "default build profile")
	cmd.Flags().IntVar(&maxRecent, "max-recent", 0, "recent files cap")
	cmd.Flags().IntVar(&maxHistory, "max-history", 0, "history entries cap")
	return cmd
}
