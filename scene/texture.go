// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/draw"
)

// Texture is an RGBA image used to color a material surface.
type Texture struct {

	// Name is the name of the texture, typically the file it came from.
	Name string

	// Image is the texture image, always stored as RGBA.
	Image *image.RGBA

	// Transparent is set when any pixel has alpha < 255.
	Transparent bool
}

// NewTexture returns a new texture from the given image, converting
// it to RGBA as needed.
func NewTexture(name string, img image.Image) *Texture {
	tx := &Texture{Name: name}
	tx.SetImage(img)
	return tx
}

// SetImage sets the image, converting to RGBA and updating Transparent.
func (tx *Texture) SetImage(img image.Image) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	tx.Image = rgba
	tx.Transparent = false
	for i := 3; i < len(rgba.Pix); i += 4 {
		if rgba.Pix[i] < 255 {
			tx.Transparent = true
			break
		}
	}
}

// Size returns the image size.
func (tx *Texture) Size() image.Point {
	if tx.Image == nil {
		return image.Point{}
	}
	return tx.Image.Bounds().Size()
}
