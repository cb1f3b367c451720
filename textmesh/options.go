// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textmesh

// Options are the parameters for building extruded text geometry.
type Options struct {

	// Size is the em size of the font, in scene units.
	Size float32 `toml:"size" min:"0.01" step:"0.1"`

	// Depth is the extrusion depth of the text body, not counting the bevel.
	Depth float32 `toml:"depth" min:"0" step:"0.05"`

	// CurveSegments is the number of line segments used for each curve
	// in the glyph outlines.
	CurveSegments int `toml:"curve_segments" min:"1"`

	// Bevel turns on beveled edges on the front and back faces.
	Bevel bool `toml:"bevel"`

	// BevelThickness is how deep into the text the bevel goes.
	BevelThickness float32 `toml:"bevel_thickness" min:"0" step:"0.01"`

	// BevelSize is how far from the outline the bevel extends.
	BevelSize float32 `toml:"bevel_size" min:"0" step:"0.01"`

	// BevelOffset is how far from the outline the bevel starts.
	BevelOffset float32 `toml:"bevel_offset" step:"0.01"`

	// BevelSegments is the number of bevel layers.
	BevelSegments int `toml:"bevel_segments" min:"1"`
}

// Defaults sets the default text geometry parameters.
func (op *Options) Defaults() {
	op.Size = 0.5
	op.Depth = 0.2
	op.CurveSegments = 6
	op.Bevel = true
	op.BevelThickness = 0.03
	op.BevelSize = 0.02
	op.BevelOffset = 0
	op.BevelSegments = 4
}

// DefaultOptions returns options with default values.
func DefaultOptions() Options {
	var op Options
	op.Defaults()
	return op
}
