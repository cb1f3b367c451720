// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"

	"cogentcore.org/scenegen/scene"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadTexture synchronously loads the image at the given path as a texture
// named by its base file name, scaling it down to fit [Loader.MaxTextureSize].
func (ld *Loader) ReadTexture(fpath string) (*scene.Texture, error) {
	data, err := ld.readFile(fpath)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("assets: texture %q: %w", fpath, err)
	}
	img = FitImage(img, ld.MaxTextureSize)
	return scene.NewTexture(path.Base(cleanPath(fpath)), img), nil
}

// DecodeImage decodes image data in any of the registered formats:
// png, jpeg, gif, bmp, tiff and webp.
func DecodeImage(data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		if kind, _ := filetype.Match(data); kind != filetype.Unknown {
			return nil, fmt.Errorf("%s data is not an image", kind.MIME.Value)
		}
		return nil, fmt.Errorf("unknown data is not an image")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// FitImage scales img down, preserving its aspect ratio, so that
// neither side exceeds maxSize. It returns img unchanged when it
// already fits or maxSize is 0.
func FitImage(img image.Image, maxSize int) image.Image {
	sz := img.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return img
	}
	nx, ny := maxSize, maxSize
	if sz.X > sz.Y {
		ny = max(1, sz.Y*maxSize/sz.X)
	} else {
		nx = max(1, sz.X*maxSize/sz.Y)
	}
	return transform.Resize(img, nx, ny, transform.Linear)
}
