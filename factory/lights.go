// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"cogentcore.org/scenegen/scene"
)

// CreateCamera returns a new perspective camera at the cursor, with
// the configured field of view, aspect and clipping planes.
func (f *Factory) CreateCamera(props bool) *scene.Camera {
	cam := scene.NewCamera(kinds.Camera.String())
	f.config().Camera.Apply(cam)
	cam.Pose.Pos = f.Cursor
	f.attach(kinds.Camera, cam, props)
	return cam
}

// AddCamera creates a camera, inserts it into the current parent and
// registers it with [Factory.Cameras].
func (f *Factory) AddCamera(props bool) *scene.Camera {
	cam := f.CreateCamera(props)
	f.insert(cam)
	return cam
}

// CreateAmbientLight returns a new white ambient light at half
// intensity. It has no position and no helper.
func (f *Factory) CreateAmbientLight(props bool) *scene.AmbientLight {
	lt := scene.NewAmbientLight(kinds.AmbientLight.String())
	f.attach(kinds.AmbientLight, lt, props)
	return lt
}

// AddAmbientLight creates an ambient light and inserts it into the
// current parent.
func (f *Factory) AddAmbientLight(props bool) *scene.AmbientLight {
	lt := f.CreateAmbientLight(props)
	f.insert(lt)
	return lt
}

// helperMeshes build the marker meshes for each wrapped light kind.
var helperMeshes = map[kinds.Kinds]func(ms *mesh.Mesh){
	kinds.DirectionalLight: func(ms *mesh.Mesh) {
		ms.AddPlane(0.5, 0.5, 1, 1, math32.Vector3{})
	},
	kinds.HemisphereLight: func(ms *mesh.Mesh) {
		ms.AddOctahedron(0.25, math32.Vector3{})
	},
	kinds.PointLight: func(ms *mesh.Mesh) {
		ms.AddSphereSector(0.1, 8, 6, 0, 360, 0, 180, math32.Vector3{})
	},
	kinds.RectAreaLight: func(ms *mesh.Mesh) {
		ms.AddPlane(1, 1, 1, 1, math32.Vector3{})
	},
	kinds.SpotLight: func(ms *mesh.Mesh) {
		ms.AddCylinderSector(0.5, 0, 0.25, 8, 1, 0, 360, false, true, math32.Vector3{})
	},
}

// helperMaterial returns the unlit looking material for light helpers.
func helperMaterial(clr color.RGBA) *scene.Material {
	mat := scene.NewMaterial()
	mat.Color = clr
	mat.Emissive = clr
	mat.CullBack = false
	return mat
}

// createLight places lt at the cursor and wraps it with its helper.
func (f *Factory) createLight(kind kinds.Kinds, lt scene.Light, props bool) *scene.LightObject {
	lb := lt.AsLightBase()
	lb.Pose.Pos = f.Cursor
	name := kind.String() + "Helper"
	ms := f.mesh(name, func() (*mesh.Mesh, error) {
		ms := mesh.NewMesh(name)
		helperMeshes[kind](ms)
		return ms, ms.Validate()
	})
	helper := scene.NewSolid(name, kind, ms, helperMaterial(lb.Color))
	if ra, ok := lt.(*scene.RectAreaLight); ok {
		helper.Pose.Scale.Set(ra.Width, ra.Height, 1)
	}
	lo := scene.NewLightObject(lt, helper)
	f.attach(kind, lo, props)
	return lo
}

// CreateDirectionalLight returns a new white directional light at
// half intensity, wrapped with a plane helper.
func (f *Factory) CreateDirectionalLight(props bool) *scene.LightObject {
	return f.createLight(kinds.DirectionalLight, scene.NewDirLight(kinds.DirectionalLight.String()), props)
}

// AddDirectionalLight creates a directional light and inserts both the
// wrapper and the light into the current parent.
func (f *Factory) AddDirectionalLight(props bool) *scene.LightObject {
	lo := f.CreateDirectionalLight(props)
	f.insert(lo)
	return lo
}

// CreateHemisphereLight returns a new hemisphere light with a light
// blue sky and brown ground at half intensity, wrapped with an
// octahedron helper.
func (f *Factory) CreateHemisphereLight(props bool) *scene.LightObject {
	return f.createLight(kinds.HemisphereLight, scene.NewHemisphereLight(kinds.HemisphereLight.String()), props)
}

// AddHemisphereLight creates a hemisphere light and inserts both the
// wrapper and the light into the current parent.
func (f *Factory) AddHemisphereLight(props bool) *scene.LightObject {
	lo := f.CreateHemisphereLight(props)
	f.insert(lo)
	return lo
}

// CreatePointLight returns a new white point light at half intensity,
// wrapped with a small sphere helper.
func (f *Factory) CreatePointLight(props bool) *scene.LightObject {
	return f.createLight(kinds.PointLight, scene.NewPointLight(kinds.PointLight.String()), props)
}

// AddPointLight creates a point light and inserts both the wrapper and
// the light into the current parent.
func (f *Factory) AddPointLight(props bool) *scene.LightObject {
	lo := f.CreatePointLight(props)
	f.insert(lo)
	return lo
}

// CreateRectAreaLight returns a new white area light at half
// intensity, wrapped with a plane helper the size of the light.
func (f *Factory) CreateRectAreaLight(props bool) *scene.LightObject {
	return f.createLight(kinds.RectAreaLight, scene.NewRectAreaLight(kinds.RectAreaLight.String()), props)
}

// AddRectAreaLight creates an area light and inserts both the wrapper
// and the light into the current parent.
func (f *Factory) AddRectAreaLight(props bool) *scene.LightObject {
	lo := f.CreateRectAreaLight(props)
	f.insert(lo)
	return lo
}

// CreateSpotLight returns a new white spot light at half intensity,
// wrapped with a cone helper.
func (f *Factory) CreateSpotLight(props bool) *scene.LightObject {
	return f.createLight(kinds.SpotLight, scene.NewSpotLight(kinds.SpotLight.String()), props)
}

// AddSpotLight creates a spot light and inserts both the wrapper and
// the light into the current parent.
func (f *Factory) AddSpotLight(props bool) *scene.LightObject {
	lo := f.CreateSpotLight(props)
	f.insert(lo)
	return lo
}
