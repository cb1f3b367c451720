// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"cogentcore.org/scenegen/obj"
	"cogentcore.org/scenegen/scene"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/semaphore"
)

// Loader is a [Resolver] that reads assets from a file system.
// Each load runs on its own goroutine, and at most Workers loads
// read and decode at the same time.
type Loader struct {

	// FS is the file system that asset paths are resolved in.
	FS fs.FS

	// DefaultFont is the font path used when an empty path is requested.
	DefaultFont string

	// MaxTextureSize is the largest width or height of a texture;
	// larger images are scaled down. 0 means no limit.
	MaxTextureSize int

	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu         sync.Mutex
	fonts      map[string]*Font
	materials  map[string]*scene.Material
	defaultMat *scene.Material
}

// NewLoader returns a new loader over fsys that runs at most workers
// loads at once.
func NewLoader(fsys fs.FS, workers int) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{
		FS:          fsys,
		DefaultFont: DefaultFontPath,
		sem:         semaphore.NewWeighted(int64(workers)),
		fonts:       make(map[string]*Font),
		materials:   make(map[string]*scene.Material),
		defaultMat:  scene.NewMaterial(),
	}
}

// NewDirLoader returns a new loader rooted at the given directory,
// which may start with ~ for the home directory.
func NewDirLoader(root string, workers int) (*Loader, error) {
	dir, err := homedir.Expand(root)
	if err != nil {
		return nil, fmt.Errorf("assets: expanding root %q: %w", root, err)
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: root: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("assets: root %q is not a directory", dir)
	}
	return NewLoader(os.DirFS(dir), workers), nil
}

// Wait blocks until every load issued so far has finished,
// including its callbacks.
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// run calls fun on a new goroutine once a worker slot is free.
func (ld *Loader) run(fun func()) {
	ld.wg.Add(1)
	go func() {
		defer ld.wg.Done()
		if err := ld.sem.Acquire(context.Background(), 1); err != nil {
			slog.Error("assets: acquiring worker", "err", err)
			return
		}
		defer ld.sem.Release(1)
		fun()
	}()
}

// cleanPath converts p to a valid [fs.FS] path.
func cleanPath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// readFile reads the named file from the loader file system.
func (ld *Loader) readFile(name string) ([]byte, error) {
	if ld.FS == nil {
		return nil, fmt.Errorf("assets: no file system to read %q from", name)
	}
	return fs.ReadFile(ld.FS, cleanPath(name))
}

// LoadFont implements [Resolver].
func (ld *Loader) LoadFont(path string, onLoaded func(fn *Font)) {
	ld.run(func() {
		fn, err := ld.ReadFont(path)
		if err != nil {
			slog.Error("assets: unable to load font", "path", path, "err", err)
			return
		}
		onLoaded(fn)
	})
}

// LoadModel implements [Resolver].
func (ld *Loader) LoadModel(path string, onLoaded func(md *obj.Model), onProgress func(frac float32), onError func(err error)) {
	ld.run(func() {
		md, err := ld.ReadModel(path, onProgress)
		if err != nil {
			onError(err)
			return
		}
		onLoaded(md)
	})
}

// LoadTexture implements [Resolver].
func (ld *Loader) LoadTexture(path string, onLoaded func(tx *scene.Texture)) {
	ld.run(func() {
		tx, err := ld.ReadTexture(path)
		if err != nil {
			slog.Error("assets: unable to load texture", "path", path, "err", err)
			return
		}
		onLoaded(tx)
	})
}

// DefaultMaterial implements [Resolver]. Each call returns a new
// copy of the default material, or nil if it has been unset.
func (ld *Loader) DefaultMaterial() *scene.Material {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	if ld.defaultMat == nil {
		return nil
	}
	return ld.defaultMat.Clone()
}

// SetDefaultMaterial sets the material that [Loader.DefaultMaterial] copies.
func (ld *Loader) SetDefaultMaterial(mat *scene.Material) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.defaultMat = mat
}

// Material implements [Resolver].
func (ld *Loader) Material(id string) *scene.Material {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.materials[id]
}

// AddMaterial registers mat under id, setting its ID.
func (ld *Loader) AddMaterial(id string, mat *scene.Material) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	mat.ID = id
	ld.materials[id] = mat
}
