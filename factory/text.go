// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scenegen/assets"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
	"cogentcore.org/scenegen/textmesh"
)

// DefaultText is the text used when an empty string is given.
const DefaultText = "graphicsAI"

// CreateText returns a new solid for the given text extruded in the
// given font, centered at the cursor. Zero opts uses the configured
// text options.
func (f *Factory) CreateText(fn *assets.Font, text string, opts textmesh.Options, mat *scene.Material, props bool) (*scene.Solid, error) {
	if fn == nil || fn.Face == nil {
		return nil, fmt.Errorf("factory: no font face for text %q", text)
	}
	if text == "" {
		text = DefaultText
	}
	if opts == (textmesh.Options{}) {
		opts = f.config().Text
	}
	tx := &textmesh.Text{Face: fn.Face, String: text, Options: opts}
	ms, err := tx.Build()
	if err != nil {
		return nil, fmt.Errorf("factory: building text %q: %w", text, err)
	}
	sld := scene.NewSolid(text, kinds.Text, ms, f.material(mat))
	sld.Text = tx
	sld.Pose.Pos = f.Cursor
	f.attach(kinds.Text, sld, props)
	return sld, nil
}

// AddText loads the font at fontPath and then creates the text,
// inserts it into the parent current at that time and calls onAfterAdd.
// An empty fontPath uses the configured default font. The material is
// resolved when the font arrives, not when AddText is called.
// If the font fails to load, the returned [Pending] never completes.
func (f *Factory) AddText(text string, onAfterAdd func(sld *scene.Solid), mat *scene.Material, opts textmesh.Options, fontPath string, props bool) *Pending[*scene.Solid] {
	if fontPath == "" {
		fontPath = f.config().Assets.DefaultFont
	}
	p := newPending[*scene.Solid](f, fontPath)
	f.Resolver.LoadFont(fontPath, func(fn *assets.Font) {
		f.post(func() {
			sld, err := f.CreateText(fn, text, opts, mat, props)
			if err != nil {
				slog.Error("factory: unable to create text", "font", fontPath, "err", err)
				p.resolve(nil, err)
				return
			}
			f.insert(sld)
			if onAfterAdd != nil {
				onAfterAdd(sld)
			}
			p.resolve(sld, nil)
		})
	})
	return p
}
