// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"cogentcore.org/scenegen/scene"
)

// createSolid creates a primitive solid of the given kind with its
// default geometry at the cursor.
func (f *Factory) createSolid(kind kinds.Kinds, mat *scene.Material, props bool) *scene.Solid {
	g, _ := kinds.DefaultGeometry(kind)
	ms := f.mesh(kind.String(), func() (*mesh.Mesh, error) {
		return mesh.New(g)
	})
	mat = f.material(mat)
	if g.DoubleSided {
		mat.CullBack = false
	}
	sld := scene.NewSolid(kind.String(), kind, ms, mat)
	sld.Geometry = g
	sld.Pose.Pos = f.Cursor
	f.attach(kind, sld, props)
	return sld
}

// CreatePlane returns a new double sided 1x1 plane. A nil mat uses
// the shared material or a new default one; the material is made
// double sided.
func (f *Factory) CreatePlane(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Plane, mat, props)
}

// AddPlane creates a plane and inserts it into the current parent.
func (f *Factory) AddPlane(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreatePlane(mat, props)
	f.insert(sld)
	return sld
}

// CreateCube returns a new 1x1x1 box.
func (f *Factory) CreateCube(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Cube, mat, props)
}

// AddCube creates a cube and inserts it into the current parent.
func (f *Factory) AddCube(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateCube(mat, props)
	f.insert(sld)
	return sld
}

// CreateCircle returns a new circle of radius 1 with 10 segments.
func (f *Factory) CreateCircle(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Circle, mat, props)
}

// AddCircle creates a circle and inserts it into the current parent.
func (f *Factory) AddCircle(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateCircle(mat, props)
	f.insert(sld)
	return sld
}

// CreateUVSphere returns a new sphere of radius 1 with 30x30 segments.
func (f *Factory) CreateUVSphere(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.UVSphere, mat, props)
}

// AddUVSphere creates a UV sphere and inserts it into the current parent.
func (f *Factory) AddUVSphere(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateUVSphere(mat, props)
	f.insert(sld)
	return sld
}

// CreateIcoSphere returns a new icosphere of radius 1 and detail 2.
func (f *Factory) CreateIcoSphere(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.IcoSphere, mat, props)
}

// AddIcoSphere creates an icosphere and inserts it into the current parent.
func (f *Factory) AddIcoSphere(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateIcoSphere(mat, props)
	f.insert(sld)
	return sld
}

// CreateCylinder returns a new cylinder of radius 1 and height 1.
func (f *Factory) CreateCylinder(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Cylinder, mat, props)
}

// AddCylinder creates a cylinder and inserts it into the current parent.
func (f *Factory) AddCylinder(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateCylinder(mat, props)
	f.insert(sld)
	return sld
}

// CreateCone returns a new cone of radius 1 and height 2.
func (f *Factory) CreateCone(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Cone, mat, props)
}

// AddCone creates a cone and inserts it into the current parent.
func (f *Factory) AddCone(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateCone(mat, props)
	f.insert(sld)
	return sld
}

// CreateTorus returns a new torus of radius 0.5 with a 0.1 tube.
func (f *Factory) CreateTorus(mat *scene.Material, props bool) *scene.Solid {
	return f.createSolid(kinds.Torus, mat, props)
}

// AddTorus creates a torus and inserts it into the current parent.
func (f *Factory) AddTorus(mat *scene.Material, props bool) *scene.Solid {
	sld := f.CreateTorus(mat, props)
	f.insert(sld)
	return sld
}
