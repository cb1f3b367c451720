// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialDefaults(t *testing.T) {
	mt := NewMaterial()
	assert.Equal(t, DefaultColor, mt.Color)
	assert.True(t, mt.CullBack)
	assert.Equal(t, float32(30), mt.Shiny)
	assert.Equal(t, math32.Vec2(1, 1), mt.Tiling.Repeat)
	assert.False(t, mt.IsTransparent())
}

func TestMaterialClone(t *testing.T) {
	tex := NewTexture("checker", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	mt := NewMaterial()
	mt.ID = "steel"
	mt.SetTexture(tex)
	cl := mt.Clone()
	require.NotSame(t, mt, cl)
	assert.Equal(t, "steel", cl.ID)
	assert.Same(t, tex, cl.Texture)
	assert.Equal(t, "checker", cl.TextureName)

	cl.Color = color.RGBA{1, 2, 3, 255}
	assert.Equal(t, DefaultColor, mt.Color)
}

func TestTextureTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 128})
	tex := NewTexture("t", img)
	assert.True(t, tex.Transparent)
	assert.Equal(t, image.Pt(2, 1), tex.Size())
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera("Camera")
	assert.Equal(t, float32(50), cam.FOV)
	assert.InDelta(t, 1.6, cam.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(50), cam.Far)
	cam.Pose.Pos.Set(0, 0, 10)
	assert.InDelta(t, -1, cam.ViewDir().Z, 1e-6)
}

func TestLightDefaults(t *testing.T) {
	for _, lt := range []Light{NewAmbientLight("a"), NewDirLight("d"), NewPointLight("p"), NewRectAreaLight("r"), NewSpotLight("s")} {
		lb := lt.AsLightBase()
		assert.True(t, lb.On, lb.Name)
		assert.Equal(t, float32(0.5), lb.Lumens, lb.Name)
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, lb.Color, lb.Name)
	}
	hl := NewHemisphereLight("h")
	assert.Equal(t, color.RGBA{0x99, 0xcc, 0xff, 0xff}, hl.Color)
	assert.Equal(t, color.RGBA{0x66, 0x33, 0x00, 0xff}, hl.GroundColor)
}

func TestSceneCameras(t *testing.T) {
	sc := NewScene("scene")
	assert.Nil(t, sc.Camera())
	c1 := NewCamera("Camera")
	c2 := NewCamera("Camera")
	sc.AddCamera(c1)
	sc.AddCamera(c2)
	assert.Equal(t, 2, sc.Cameras.Len())
	assert.Equal(t, "Camera.1", c2.Name)
	assert.Same(t, c1, sc.Camera())
	require.NoError(t, sc.SetCamera("Camera.1"))
	assert.Same(t, c2, sc.Camera())
	assert.Error(t, sc.SetCamera("nope"))
}

func TestSceneWalkAndBounds(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup("group")
	gp.Pose.Pos.Set(10, 0, 0)
	sc.AddChild(gp)

	ms := mesh.NewMesh("box")
	ms.AddBox(math32.Vec3(2, 2, 2), 1, math32.Vector3{})
	gp.AddChild(NewSolid("box", kinds.Cube, ms, NewMaterial()))

	lo := NewLightObject(NewPointLight("PointLight"), NewSolid("helper", kinds.UVSphere, nil, nil))
	sc.AddChild(lo)

	assert.Equal(t, 4, sc.NumNodes())
	assert.Equal(t, 1, sc.Root.IndexOf(lo))
	assert.Same(t, gp, sc.Root.ChildByName("group"))

	bb := sc.Bounds()
	assert.InDelta(t, 9, bb.Min.X, 1e-6)
	assert.InDelta(t, 11, bb.Max.X, 1e-6)
}

func TestSolidRebuild(t *testing.T) {
	g, _ := kinds.DefaultGeometry(kinds.UVSphere)
	sld := NewSolid("sphere", kinds.UVSphere, nil, nil)
	sld.Geometry = g
	sld.Geometry.Radius = 3
	require.NoError(t, sld.Rebuild())
	assert.InDelta(t, 3, sld.Mesh.BBox.Max.Y, 1e-4)

	cam := NewSolid("bad", kinds.Camera, nil, nil)
	assert.Error(t, cam.Rebuild())
}
