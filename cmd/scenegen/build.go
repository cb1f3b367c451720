// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/manifest"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *App) buildCmd() *cobra.Command {
	var watch bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "build <manifest|script>",
		Short: "Build the scene described by a YAML manifest or a script and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return a.watch(cmd.Context(), cmd.OutOrStdout(), args[0], timeout)
			}
			return a.build(cmd.Context(), cmd.OutOrStdout(), args[0], timeout)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild whenever the file changes")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "how long to wait for assets to load")
	return cmd
}

// build builds the scene for the file at path and prints its tree to w.
// The tree is printed even if some objects failed.
func (a *App) build(ctx context.Context, w io.Writer, path string, timeout time.Duration) error {
	m, err := manifest.Open(path)
	if err != nil {
		return err
	}
	f, sc, ld, err := a.newFactory()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	start := time.Now()
	_, err = manifest.Apply(ctx, f, m)
	ld.Wait()
	slog.Info("scenegen: built scene", "file", path, "objects", len(m.Objects), "nodes", sc.NumNodes(), "took", time.Since(start))
	PrintTree(w, sc)
	return err
}

// watch builds the file at path, and again every time it is written,
// until ctx ends. Build errors are logged and do not stop watching.
func (a *App) watch(ctx context.Context, w io.Writer, path string, timeout time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { errors.Log(watcher.Close()) }()
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	rebuild := func() {
		if err := a.build(ctx, w, path, timeout); err != nil {
			slog.Error("scenegen: build failed", "file", path, "err", err)
		}
	}
	rebuild()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Pick an OBJ file with the native file dialog and print its scene tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sc, _, err := a.newFactory()
			if err != nil {
				return err
			}
			if _, err := f.ImportObj(); err != nil {
				if errors.Is(err, factory.ErrPickerCanceled) {
					return nil
				}
				return err
			}
			PrintTree(cmd.OutOrStdout(), sc)
			return nil
		},
	}
}

func (a *App) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the object kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, k := range kinds.KindsValues() {
				async := ""
				if k.IsAsync() {
					async = " (async)"
				}
				fmt.Fprintf(w, "%-18s %s%s\n", k.String(), k.Desc(), async)
			}
			return nil
		},
	}
}
