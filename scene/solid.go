// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"cogentcore.org/scenegen/textmesh"
)

// Solid is a renderable node: a mesh drawn with a material.
// Primitive shapes and 3D text are solids.
type Solid struct {
	NodeBase

	// Kind is the object kind this solid was made for.
	Kind kinds.Kinds

	// Geometry holds the shape parameters of primitive solids.
	Geometry kinds.Geometry

	// Text holds the source of text solids; nil otherwise.
	Text *textmesh.Text

	// Mesh is the geometry of the solid.
	Mesh *mesh.Mesh `copier:"-"`

	// Material is the material used for rendering, possibly shared
	// with other solids.
	Material *Material `copier:"-"`
}

// NewSolid returns a new solid of the given kind with the given mesh and material.
func NewSolid(name string, kind kinds.Kinds, ms *mesh.Mesh, mat *Material) *Solid {
	sld := &Solid{Kind: kind, Mesh: ms, Material: mat}
	sld.InitNode(name)
	return sld
}

// SetMaterial sets the material used by the solid.
func (sld *Solid) SetMaterial(mat *Material) *Solid {
	sld.Material = mat
	return sld
}

// Rebuild regenerates the mesh from the current Geometry or Text.
// Property controllers call it after changing shape parameters.
func (sld *Solid) Rebuild() error {
	var ms *mesh.Mesh
	var err error
	switch {
	case sld.Text != nil:
		ms, err = sld.Text.Build()
	case sld.Kind.IsPrimitive():
		g := sld.Geometry
		g.Kind = sld.Kind
		ms, err = mesh.New(g)
	default:
		return fmt.Errorf("scene: cannot rebuild solid %q of kind %v", sld.Name, sld.Kind)
	}
	if err != nil {
		return err
	}
	sld.Mesh = ms
	return nil
}
