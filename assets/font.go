// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"fmt"
	"slices"

	"cogentcore.org/scenegen/textmesh"
	"github.com/go-text/typesetting/font"
	"github.com/h2non/filetype"
)

// fontExtensions are the file types that are parsed as fonts.
var fontExtensions = []string{"ttf", "otf", "woff", "woff2"}

// ReadFont synchronously loads the font at the given path, using
// [Loader.DefaultFont] for an empty path. Parsed fonts are cached by path.
func (ld *Loader) ReadFont(path string) (*Font, error) {
	if path == "" {
		path = ld.DefaultFont
	}
	ld.mu.Lock()
	fn, ok := ld.fonts[path]
	ld.mu.Unlock()
	if ok {
		return fn, nil
	}
	var face *font.Face
	var err error
	if path == "" || path == DefaultFontPath {
		face, err = textmesh.DefaultFace()
	} else {
		face, err = ld.parseFont(path)
	}
	if err != nil {
		return nil, err
	}
	fn = &Font{Path: path, Face: face}
	ld.mu.Lock()
	ld.fonts[path] = fn
	ld.mu.Unlock()
	return fn, nil
}

func (ld *Loader) parseFont(path string) (*font.Face, error) {
	data, err := ld.readFile(path)
	if err != nil {
		return nil, err
	}
	// collections are not known to filetype, so only reject known non-fonts
	if kind, _ := filetype.Match(data); kind != filetype.Unknown && !slices.Contains(fontExtensions, kind.Extension) {
		return nil, fmt.Errorf("assets: %q is a %s file, not a font", path, kind.MIME.Value)
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parsing font %q: %w", path, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("assets: no faces in font %q", path)
	}
	return faces[0], nil
}
