// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides the asynchronous asset resolver used by the
// scene factory to load fonts, models and textures, and to look up
// materials, along with [Loader], an implementation over an [fs.FS].
package assets

import (
	"cogentcore.org/scenegen/obj"
	"cogentcore.org/scenegen/scene"
	"github.com/go-text/typesetting/font"
)

// DefaultFontPath is the font path that selects the embedded
// Latin Modern Roman font. An empty path does the same.
const DefaultFontPath = "default"

// Font is a loaded font face.
type Font struct {

	// Path is the path the font was requested by.
	Path string

	// Face is the parsed face.
	Face *font.Face
}

// Resolver loads assets asynchronously and provides materials.
// Completion callbacks may be called on any goroutine, in any order.
// Failed font and texture loads are logged and their callbacks never fire.
type Resolver interface {

	// LoadFont loads the font at the given path, calling onLoaded when done.
	LoadFont(path string, onLoaded func(fn *Font))

	// LoadModel loads the OBJ model at the given path, with its materials
	// and textures. Exactly one of onLoaded or onError is called; onProgress
	// may be called any number of times before that, with values in 0-1.
	LoadModel(path string, onLoaded func(md *obj.Model), onProgress func(frac float32), onError func(err error))

	// LoadTexture loads the image at the given path, calling onLoaded when done.
	LoadTexture(path string, onLoaded func(tx *scene.Texture))

	// DefaultMaterial returns a new material to use when none is given.
	DefaultMaterial() *scene.Material

	// Material returns the material registered under id, or nil.
	Material(id string) *scene.Material
}
