// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// DefaultColor is the default surface color of new materials.
var DefaultColor = color.RGBA{0x8e, 0x90, 0x91, 0xff}

// Tiling are the texture tiling parameters
type Tiling struct {

	// how often to repeat the texture in each direction
	Repeat math32.Vector2

	// offset for when to start the texure in each direction
	Off math32.Vector2
}

// Defaults sets default tiling params if not yet initialized
func (tl *Tiling) Defaults() {
	if tl.Repeat == (math32.Vector2{}) {
		tl.Repeat.Set(1, 1)
	}
}

// Material describes the material properties of a surface (colors, shininess, texture)
// i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity. The Emissive color is only for glowing objects.
// Materials are always referenced by pointer: several solids can share
// one material, and editing it changes all of them.
type Material struct {

	// ID is an optional identifier used to look the material up in a library.
	ID string

	// Color is the main color of surface, used for both ambient and diffuse color in standard Phong model -- alpha component determines transparency
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow -- can be used for marking lights with an object
	Emissive color.RGBA

	// Shiny is the specular shininess factor -- how focally vs. broad the surface shines back directional light
	Shiny float32 `min:"0" max:"128"`

	// Reflective is the specular reflectiveness factor -- how much it shines back directional light
	Reflective float32 `min:"0" max:"1"`

	// Bright is an overall multiplier on final computed color value
	Bright float32 `min:"0"`

	// CullBack indicates to cull the back-facing surfaces.
	// It is off for double sided surfaces such as planes.
	CullBack bool

	// TextureName is the name of the texture to provide color for the surface.
	TextureName string

	// Tiling is the texture tiling parameters: repeat and offset.
	Tiling Tiling

	// Texture is the loaded texture, shared by reference.
	Texture *Texture `copier:"-"`
}

// NewMaterial returns a new material with default parameters.
func NewMaterial() *Material {
	mt := &Material{}
	mt.Defaults()
	return mt
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = DefaultColor
	mt.Emissive = color.RGBA{}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
	mt.Tiling.Defaults()
	mt.CullBack = true
}

// Clone returns a deep copy of the material that shares only the
// texture with the original.
func (mt *Material) Clone() *Material {
	nm := &Material{}
	if err := copier.CopyWithOption(nm, mt, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("scene.Material.Clone", "err", err)
	}
	nm.Texture = mt.Texture
	return nm
}

// SetTexture sets material to use given texture
func (mt *Material) SetTexture(tex *Texture) *Material {
	mt.Texture = tex
	if tex != nil {
		mt.TextureName = tex.Name
	} else {
		mt.TextureName = ""
	}
	return mt
}

// IsTransparent returns true if texture says it is, or if color has alpha < 255
func (mt *Material) IsTransparent() bool {
	if mt.Texture != nil && mt.Texture.Transparent {
		return true
	}
	return mt.Color.A < 255
}
