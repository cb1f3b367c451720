// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/scenegen/assets"
	"cogentcore.org/scenegen/config"
	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/scene"
	"github.com/spf13/cobra"
)

// App holds the state shared by the scenegen commands.
type App struct {

	// ConfigFile is the TOML config file; defaults are used if empty.
	ConfigFile string

	// Verbose, VeryVerbose and Quiet override the configured log level.
	Verbose, VeryVerbose, Quiet bool

	// Config is the loaded config.
	Config *config.Config
}

func newRootCmd() *cobra.Command {
	a := &App{}
	root := &cobra.Command{
		Use:           "scenegen",
		Short:         "Build 3D scenes from manifests and scripts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.ConfigFile, "config", "c", "", "TOML config file")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&a.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&a.Quiet, "quiet", "q", false, "only log errors")
	root.AddCommand(a.buildCmd(), a.importCmd(), a.kindsCmd())
	return root
}

// setup loads the config and installs the logger.
func (a *App) setup(logw io.Writer) error {
	if a.ConfigFile == "" {
		a.Config = config.Default()
	} else {
		c, err := config.Open(a.ConfigFile)
		if err != nil {
			return err
		}
		a.Config = c
	}
	lv, err := a.Config.Log.SlogLevel()
	if err != nil {
		return err
	}
	lv = LevelFromFlags(lv, a.VeryVerbose, a.Verbose, a.Quiet)
	slog.SetDefault(slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: lv})))
	return nil
}

// newFactory returns a new scene and a factory over it that loads
// assets from the configured root.
func (a *App) newFactory() (*factory.Factory, *scene.Scene, *assets.Loader, error) {
	ac := a.Config.Assets
	ld, err := assets.NewDirLoader(ac.Root, ac.Workers)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("scenegen: %w", err)
	}
	ld.DefaultFont = ac.DefaultFont
	ld.MaxTextureSize = ac.MaxTextureSize
	ld.SetDefaultMaterial(a.Config.Material.New())
	sc := scene.NewScene("scene")
	f := factory.New(sc, ld)
	f.Config = a.Config
	return f, sc, ld, nil
}
