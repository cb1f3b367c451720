// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"cogentcore.org/scenegen/obj"
	"cogentcore.org/scenegen/scene"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngData(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0x80, 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) *mem.FS {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fs, "models/tex", 0o755))
	require.NoError(t, hackpadfs.MkdirAll(fs, "fonts", 0o755))
	write := func(name string, data []byte) {
		require.NoError(t, hackpadfs.WriteFullFile(fs, name, data, 0o644))
	}
	write("models/box.obj", []byte("mtllib box.mtl\no box\nv 0 0 0\nv 1 0 0\nv 1 1 0\nusemtl wood\nf 1 2 3\n"))
	write("models/box.mtl", []byte("newmtl wood\nKd 0.5 0.25 0\nmap_Kd tex/wood.png\n"))
	write("models/tex/wood.png", pngData(t, 64, 32))
	write("models/other.obj", []byte("mtllib shared.mtl\nv 0 0 0\nv 1 0 0\nv 1 1 0\nusemtl red\nf 1 2 3\n"))
	write("models/shared.mtl", []byte("newmtl red\nKd 1 0 0\nmap_Kd missing.png\n"))
	write("models/broken.obj", []byte("v 0 0\n"))
	write("fonts/lm.ttf", lmroman10regular.TTF)
	write("fonts/fake.ttf", pngData(t, 2, 2))
	return fs
}

func TestReadFont(t *testing.T) {
	ld := NewLoader(testFS(t), 2)
	fn, err := ld.ReadFont("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFontPath, fn.Path)
	require.NotNil(t, fn.Face)

	again, err := ld.ReadFont(DefaultFontPath)
	require.NoError(t, err)
	assert.Same(t, fn, again)

	fn, err = ld.ReadFont("fonts/lm.ttf")
	require.NoError(t, err)
	assert.NotNil(t, fn.Face)

	_, err = ld.ReadFont("fonts/fake.ttf")
	assert.ErrorContains(t, err, "not a font")
	_, err = ld.ReadFont("fonts/none.ttf")
	assert.Error(t, err)
}

func TestReadTexture(t *testing.T) {
	ld := NewLoader(testFS(t), 2)
	tx, err := ld.ReadTexture("models/tex/wood.png")
	require.NoError(t, err)
	assert.Equal(t, "wood.png", tx.Name)
	assert.Equal(t, image.Pt(64, 32), tx.Size())

	ld.MaxTextureSize = 16
	tx, err = ld.ReadTexture("/models/tex/wood.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 8), tx.Size())

	_, err = ld.ReadTexture("models/box.obj")
	assert.Error(t, err)
}

func TestReadModel(t *testing.T) {
	ld := NewLoader(testFS(t), 2)
	var fracs []float32
	md, err := ld.ReadModel("models/box.obj", func(f float32) { fracs = append(fracs, f) })
	require.NoError(t, err)
	require.NotEmpty(t, fracs)
	assert.Equal(t, float32(1), fracs[len(fracs)-1])
	require.Contains(t, md.Textures, "tex/wood.png")

	gp := md.Build("box")
	sld := gp.Children[0].(*scene.Group).Children[0].(*scene.Solid)
	assert.Equal(t, uint8(128), sld.Material.Color.R)
	assert.NotNil(t, sld.Material.Texture)
}

func TestReadModelMatlib(t *testing.T) {
	ld := NewLoader(testFS(t), 2)
	md, err := ld.ReadModel("models/other.obj", nil)
	require.NoError(t, err)
	require.Contains(t, md.Materials, "red")
	assert.Equal(t, uint8(255), md.Materials["red"].Diffuse.R)
	assert.Empty(t, md.Textures)
}

func TestLoadModelAsync(t *testing.T) {
	ld := NewLoader(testFS(t), 1)
	var mu sync.Mutex
	var loaded []*obj.Model
	var errs []error
	ld.LoadModel("models/box.obj", func(md *obj.Model) {
		mu.Lock()
		loaded = append(loaded, md)
		mu.Unlock()
	}, nil, func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})
	ld.LoadModel("models/broken.obj", func(md *obj.Model) {
		mu.Lock()
		loaded = append(loaded, md)
		mu.Unlock()
	}, nil, func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})
	ld.Wait()
	assert.Len(t, loaded, 1)
	assert.Len(t, errs, 1)
}

func TestLoadFontFailureNeverCalls(t *testing.T) {
	ld := NewLoader(testFS(t), 1)
	called := false
	ld.LoadFont("fonts/none.ttf", func(fn *Font) { called = true })
	ld.Wait()
	assert.False(t, called)

	var got *scene.Texture
	ld.LoadTexture("models/tex/wood.png", func(tx *scene.Texture) { got = tx })
	ld.Wait()
	assert.NotNil(t, got)
}

func TestMaterials(t *testing.T) {
	ld := NewLoader(nil, 1)
	def := ld.DefaultMaterial()
	require.NotNil(t, def)
	assert.NotSame(t, def, ld.DefaultMaterial())
	assert.Nil(t, ld.Material("gold"))
	gold := scene.NewMaterial()
	ld.AddMaterial("gold", gold)
	assert.Same(t, gold, ld.Material("gold"))
	assert.Equal(t, "gold", gold.ID)

	ld.SetDefaultMaterial(nil)
	assert.Nil(t, ld.DefaultMaterial())
}

func TestNewDirLoader(t *testing.T) {
	dir := t.TempDir()
	ld, err := NewDirLoader(dir, 2)
	require.NoError(t, err)
	assert.NotNil(t, ld.FS)
	_, err = NewDirLoader(dir+"/nope", 2)
	assert.Error(t, err)
}
