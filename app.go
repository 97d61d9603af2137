package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"universal-compiler/app/compiler"
	"universal-compiler/app/config"
	"universal-compiler/app/engine"
	"universal-compiler/app/probe"
	"universal-compiler/app/store"
	"universal-compiler/app/utils"
)

// app wires the explicit store handles into the engine. Constructed once
// per command invocation and closed when the command is done.
type app struct {
	paths    config.Paths
	backend  store.Backend
	settings *store.SettingsStore
	profiles *store.ProfilesStore
	recent   *store.RecentStore
	history  *store.HistoryStore
	prober   *probe.Prober
	engine   *engine.Engine
}

func openApp(cmd *cobra.Command) (*app, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	backendType, _ := cmd.Flags().GetString("store")

	var paths config.Paths
	if configDir != "" {
		paths = config.NewPaths(configDir)
	} else {
		var err error
		paths, err = config.DefaultPaths()
		if err != nil {
			return nil, err
		}
	}
	if err := paths.EnsureRoot(); err != nil {
		return nil, err
	}
	if err := utils.InitializeLogger(paths.LogFile); err != nil {
		return nil, err
	}

	backend, err := store.NewBackend(backendType, paths)
	if err != nil {
		utils.CloseLogger()
		return nil, err
	}

	settings, err := store.OpenSettings(backend)
	warnCorrupt(err)
	profiles, err := store.OpenProfiles(backend)
	warnCorrupt(err)
	recent, err := store.OpenRecent(backend, settings.Get().MaxRecentFiles)
	if err := firstFatal(err); err != nil {
		backend.Close()
		utils.CloseLogger()
		return nil, err
	}
	history, err := store.OpenHistory(backend, settings.Get().MaxHistoryItems)
	if err := firstFatal(err); err != nil {
		backend.Close()
		utils.CloseLogger()
		return nil, err
	}

	prober := probe.NewProber()
	eng := engine.New(compiler.New(prober), prober, engine.Stores{
		Settings: settings,
		Profiles: profiles,
		Recent:   recent,
		History:  history,
	})

	return &app{
		paths:    paths,
		backend:  backend,
		settings: settings,
		profiles: profiles,
		recent:   recent,
		history:  history,
		prober:   prober,
		engine:   eng,
	}, nil
}

// warnCorrupt reports a corrupt-recovery without failing: the store came
// back usable with defaults.
func warnCorrupt(err error) {
	if err != nil && errors.Is(err, store.ErrCorruptData) {
		utils.LogOutput("[WARNING] %v", err)
	}
}

// firstFatal keeps corrupt-recovery non-fatal but surfaces real
// construction failures (invalid limits, unreachable backend).
func firstFatal(err error) error {
	if err == nil || errors.Is(err, store.ErrCorruptData) {
		warnCorrupt(err)
		return nil
	}
	return err
}

func (a *app) Close() {
	utils.SafeClose(a.backend, "store backend")
	if err := utils.CloseLogger(); err != nil {
		fmt.Println("failed to close log file:", err)
	}
}
