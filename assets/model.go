// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/obj"
	"golang.org/x/sync/errgroup"
)

// ReadModel synchronously loads the OBJ model at the given path. The
// .obj file and the .mtl file next to it are read concurrently; if the
// obj names a different material library, that one is used instead.
// Textures named by the materials are then loaded concurrently; a
// texture that fails to load is logged and left out. onProgress, if
// non-nil, is called with the fraction of files read.
func (ld *Loader) ReadModel(fpath string, onProgress func(frac float32)) (*obj.Model, error) {
	fpath = cleanPath(fpath)
	dir := path.Dir(fpath)
	mtlPath := strings.TrimSuffix(fpath, path.Ext(fpath)) + ".mtl"
	progress := func(frac float32) {
		if onProgress != nil {
			onProgress(frac)
		}
	}

	var objData, mtlData []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		objData, err = ld.readFile(fpath)
		return err
	})
	g.Go(func() error {
		var err error
		mtlData, err = ld.readFile(mtlPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assets: model %q: %w", fpath, err)
	}
	progress(0.25)

	md, err := obj.Decode(bytes.NewReader(objData), optReader(mtlData))
	if err != nil {
		return nil, fmt.Errorf("assets: model %q: %w", fpath, err)
	}
	if md.Matlib != "" {
		if lib := path.Join(dir, md.Matlib); lib != mtlPath {
			data, err := ld.readFile(lib)
			switch {
			case err == nil:
				if md, err = obj.Decode(bytes.NewReader(objData), bytes.NewReader(data)); err != nil {
					return nil, fmt.Errorf("assets: model %q: %w", fpath, err)
				}
			case errors.Is(err, fs.ErrNotExist):
				slog.Warn("assets: material library not found", "model", fpath, "mtllib", lib)
			default:
				return nil, fmt.Errorf("assets: model %q: %w", fpath, err)
			}
		}
	}
	progress(0.5)

	texs := md.TextureFiles()
	var mu sync.Mutex
	var done int
	var tg errgroup.Group
	for _, tf := range texs {
		tg.Go(func() error {
			tpath := tf
			if !path.IsAbs(tf) {
				tpath = path.Join(dir, tf)
			}
			tx, err := ld.ReadTexture(tpath)
			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				slog.Warn("assets: texture not loaded", "model", fpath, "texture", tf, "err", err)
			} else {
				md.Textures[tf] = tx
			}
			progress(0.5 + 0.5*float32(done)/float32(len(texs)))
			return nil
		})
	}
	tg.Wait()
	if len(texs) == 0 {
		progress(1)
	}
	return md, nil
}

// optReader returns a reader over data, or nil for no data.
func optReader(data []byte) io.Reader {
	if data == nil {
		return nil
	}
	return bytes.NewReader(data)
}
