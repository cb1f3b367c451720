// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textmesh builds extruded, beveled 3D text meshes from the
// glyph outlines of an OpenType font face.
package textmesh

import (
	"bytes"
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/mesh"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
)

// LineHeight is the distance between lines, in units of the font size.
var LineHeight float32 = 1.25

// Text is the source of a text mesh, kept so the mesh can be rebuilt
// when the text or options change.
type Text struct {

	// Face is the font face to take glyph outlines from.
	Face *font.Face `copier:"-"`

	// String is the text to render. Newlines start a new line.
	String string

	// Options are the geometry parameters.
	Options Options
}

// Build builds the mesh for the current text and options.
func (tx *Text) Build() (*mesh.Mesh, error) {
	return New(tx.Face, tx.String, tx.Options)
}

// New builds an extruded text mesh for the given text, laid out
// left to right from the origin, and centers it on the origin.
// Runes missing from the face render with its notdef glyph.
// Text with no visible glyphs gives an empty mesh.
func New(face *font.Face, text string, op Options) (*mesh.Mesh, error) {
	if face == nil {
		return nil, errors.New("textmesh.New: nil font face")
	}
	if op.Size <= 0 {
		return nil, fmt.Errorf("textmesh.New: invalid size %g", op.Size)
	}
	upem := face.Upem()
	if upem == 0 {
		return nil, errors.New("textmesh.New: font face has zero units per em")
	}
	scale := op.Size / float32(upem)

	ms := mesh.NewMesh("text")
	var x, y float32
	for _, r := range text {
		if r == '\n' {
			x = 0
			y -= LineHeight * op.Size
			continue
		}
		gid, ok := face.Cmap.Lookup(r)
		if !ok {
			slog.Debug("textmesh: rune not in font", "rune", string(r))
		}
		if outline, ok := face.GlyphData(gid).(font.GlyphOutline); ok {
			cs := glyphContours(outline, scale, math32.Vec2(x, y), op.CurveSegments)
			for _, sh := range buildShapes(cs) {
				extrudeShape(ms, sh, &op)
			}
		}
		x += face.HorizontalAdvance(gid) * scale
	}
	ms.Center()
	return ms, nil
}

// DefaultFace returns the embedded Latin Modern Roman face.
func DefaultFace() (*font.Face, error) {
	faces, err := font.ParseTTC(bytes.NewReader(lmroman10regular.TTF))
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, errors.New("textmesh.DefaultFace: no faces in embedded font")
	}
	return faces[0], nil
}
